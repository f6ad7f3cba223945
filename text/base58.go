package text

import (
	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/base58"
	"github.com/treeforest/easybase/base58check"
	"github.com/treeforest/easybase/digest"
	"golang.org/x/text/encoding"
)

// Base58 base58 值。校验码不保存，每次编码/解析时重新计算。
type Base58 struct {
	value    []byte
	alphabet *alphabet.Alphabet
	checksum digest.Algorithm
	encoding encoding.Encoding
}

// NewBase58 从字节创建
func NewBase58(b []byte, opts Options) (Base58, error) {
	a, err := opts.alphabet(58)
	if err != nil {
		return Base58{}, errors.WithStack(err)
	}
	return Base58{value: clone(b), alphabet: a, checksum: opts.checksum(), encoding: opts.TextEncoding}, nil
}

// Base58FromString 按 opts.TextEncoding 编码明文后创建
func Base58FromString(s string, opts Options) (Base58, error) {
	b, err := encodeText(s, opts.textEncoding())
	if err != nil {
		return Base58{}, err
	}
	return NewBase58(b, opts)
}

// ParseBase58 解析不带校验码的 base58 文本
func ParseBase58(s string, opts Options) (Base58, error) {
	return parseBase58(s, opts, false)
}

// ParseBase58WithChecksum 解析带校验码的文本，校验失败返回 errs.ChecksumError
func ParseBase58WithChecksum(s string, opts Options) (Base58, error) {
	return parseBase58(s, opts, true)
}

func parseBase58(s string, opts Options, checksum bool) (Base58, error) {
	a, err := opts.alphabet(58)
	if err != nil {
		return Base58{}, errors.WithStack(err)
	}

	var b []byte
	if checksum {
		b, err = base58check.Decode(s, a, opts.checksum().Func())
	} else {
		b, err = base58.Decode(s, a)
	}
	if err != nil {
		return Base58{}, errors.WithStack(err)
	}
	return Base58{value: b, alphabet: a, checksum: opts.checksum(), encoding: opts.TextEncoding}, nil
}

func (v Base58) ab() *alphabet.Alphabet {
	if v.alphabet == nil {
		return alphabet.Base58
	}
	return v.alphabet
}

func (v Base58) hash() digest.Func {
	if v.checksum.IsZero() {
		return digest.SHA256.Func()
	}
	return v.checksum.Func()
}

func (v Base58) Alphabet() *alphabet.Alphabet { return v.ab() }

func (v Base58) Bytes() []byte { return clone(v.value) }

func (v Base58) String() string { return base58.Encode(v.value, v.ab()) }

// StringWithChecksum 追加4字节校验码后编码
func (v Base58) StringWithChecksum() string {
	return base58check.Encode(v.value, v.ab(), v.hash())
}

func (v Base58) PlainText() (string, error) { return decodeText(v.value, v.encoding) }

func (v Base58) PlainTextWith(enc encoding.Encoding) (string, error) {
	return decodeText(v.value, enc)
}

func (v Base58) Equal(other Base58) bool {
	return equal(v.ab(), v.value, other.ab(), other.value)
}

func (v Base58) HashCode() uint64 { return hashCode(v.ab(), v.value) }
