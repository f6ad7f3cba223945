// Package digest wraps the hash functions used for checksums and
// addresses behind a small static table.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Func 字节数组到字节数组的哈希函数
type Func func(data []byte) []byte

// Algorithm 哈希算法
type Algorithm struct {
	name string
	size int
	new  func() hash.Hash
}

var (
	SHA256     = Algorithm{name: "sha256", size: sha256.Size, new: sha256.New}
	SHA512     = Algorithm{name: "sha512", size: sha512.Size, new: sha512.New}
	SHA3_256   = Algorithm{name: "sha3-256", size: 32, new: sha3.New256}
	BLAKE2b256 = Algorithm{name: "blake2b-256", size: blake2b.Size256, new: newBlake2b256}
	RIPEMD160  = Algorithm{name: "ripemd160", size: ripemd160.Size, new: ripemd160.New}
)

var algorithms = []Algorithm{SHA256, SHA512, SHA3_256, BLAKE2b256, RIPEMD160}

func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil) // 无密钥时不会出错
	return h
}

// Algorithms 所有支持的算法
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Lookup 按名字查找算法，不区分大小写
func Lookup(name string) (Algorithm, bool) {
	for _, alg := range algorithms {
		if strings.EqualFold(alg.name, name) {
			return alg, true
		}
	}
	return Algorithm{}, false
}

func (alg Algorithm) Name() string { return alg.name }

func (alg Algorithm) Size() int { return alg.size }

func (alg Algorithm) String() string { return alg.name }

// IsZero 未初始化的算法
func (alg Algorithm) IsZero() bool { return alg.new == nil }

func (alg Algorithm) New() hash.Hash { return alg.new() }

// Func 单轮哈希函数
func (alg Algorithm) Func() Func {
	return func(data []byte) []byte { return Compute(alg, data) }
}

// Compute 计算一次哈希
func Compute(alg Algorithm, data []byte) []byte {
	h := alg.New()
	h.Write(data)
	return h.Sum(nil)
}

// ComputeTwice 对第一轮结果再计算一次
func ComputeTwice(alg Algorithm, data []byte) []byte {
	return Compute(alg, Compute(alg, data))
}

// Hash160 RIPEMD160(SHA256(data))
func Hash160(data []byte) []byte {
	return Compute(RIPEMD160, Compute(SHA256, data))
}

// AllZero 与算法输出等长的全0哈希
func AllZero(alg Algorithm) []byte {
	return make([]byte, alg.size)
}
