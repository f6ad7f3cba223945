package base58check

import (
	"bytes"

	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/base58"
	"github.com/treeforest/easybase/digest"
	"github.com/treeforest/easybase/pkg/errs"
)

const (
	// ChecksumLen 校验码长度
	ChecksumLen = 4

	scheme = "base58check"
)

// Checksum 对 payload 执行两次哈希，取前4个字节。h 为 nil 时使用 SHA-256。
func Checksum(payload []byte, h digest.Func) [ChecksumLen]byte {
	if h == nil {
		h = digest.SHA256.Func()
	}
	var sum [ChecksumLen]byte
	copy(sum[:], h(h(payload)))
	return sum
}

// Encode 在 payload 后追加校验码，再整体进行 base58 编码
func Encode(payload []byte, a *alphabet.Alphabet, h digest.Func) string {
	checksum := Checksum(payload, h)
	encoded := make([]byte, 0, len(payload)+ChecksumLen)
	encoded = append(encoded, payload...)
	encoded = append(encoded, checksum[:]...)
	return base58.Encode(encoded, a)
}

// Decode 解码并拆出最后4个字节，校验不通过返回 ChecksumError
func Decode(s string, a *alphabet.Alphabet, h digest.Func) ([]byte, error) {
	encoded, err := base58.Decode(s, a)
	if err != nil {
		return nil, err
	}
	if len(encoded) < ChecksumLen {
		return nil, errs.Format(scheme, -1, "decoded length %d is shorter than checksum", len(encoded))
	}

	payload := encoded[:len(encoded)-ChecksumLen]
	var actual [ChecksumLen]byte
	copy(actual[:], encoded[len(encoded)-ChecksumLen:])

	// 重新计算校验码
	expected := Checksum(payload, h)
	if !bytes.Equal(expected[:], actual[:]) {
		return nil, &errs.ChecksumError{Expected: expected, Actual: actual}
	}
	return payload, nil
}

// EncodeVersion 比特币地址格式：version || payload || checksum
func EncodeVersion(version byte, payload []byte) string {
	versioned := make([]byte, len(payload)+1)
	versioned[0] = version
	copy(versioned[1:], payload)
	return Encode(versioned, alphabet.Base58, nil)
}

// DecodeVersion EncodeVersion 的逆操作
func DecodeVersion(s string) (version byte, payload []byte, err error) {
	versioned, err := Decode(s, alphabet.Base58, nil)
	if err != nil {
		return 0, nil, err
	}
	if len(versioned) == 0 {
		return 0, nil, errs.Format(scheme, -1, "missing version byte")
	}
	return versioned[0], versioned[1:], nil
}

// IsValid 字符串能否通过校验
func IsValid(s string) bool {
	_, err := Decode(s, alphabet.Base58, nil)
	return err == nil
}
