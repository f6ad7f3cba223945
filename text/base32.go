package text

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/base32"
	"golang.org/x/text/encoding"
)

// Base32 base32 值。相等性只比较字母表和字节，填充只影响文本形式。
type Base32 struct {
	value    []byte
	alphabet *alphabet.Alphabet
	padding  bool
	encoding encoding.Encoding
}

// NewBase32 从字节创建
func NewBase32(b []byte, opts Options) (Base32, error) {
	a, err := opts.alphabet(32)
	if err != nil {
		return Base32{}, errors.WithStack(err)
	}
	return Base32{value: clone(b), alphabet: a, padding: !opts.NoPadding, encoding: opts.TextEncoding}, nil
}

// Base32FromString 按 opts.TextEncoding 编码明文后创建
func Base32FromString(s string, opts Options) (Base32, error) {
	b, err := encodeText(s, opts.textEncoding())
	if err != nil {
		return Base32{}, err
	}
	return NewBase32(b, opts)
}

// ParseBase32 解析 base32 文本。opts.NoPadding 只决定 String 的输出形式。
func ParseBase32(s string, opts Options) (Base32, error) {
	a, err := opts.alphabet(32)
	if err != nil {
		return Base32{}, errors.WithStack(err)
	}
	b, err := base32.Decode(s, a)
	if err != nil {
		return Base32{}, errors.WithStack(err)
	}
	return Base32{value: b, alphabet: a, padding: !opts.NoPadding, encoding: opts.TextEncoding}, nil
}

func (v Base32) ab() *alphabet.Alphabet {
	if v.alphabet == nil {
		return alphabet.Base32
	}
	return v.alphabet
}

func (v Base32) Alphabet() *alphabet.Alphabet { return v.ab() }

func (v Base32) Bytes() []byte { return clone(v.value) }

func (v Base32) String() string { return base32.Encode(v.value, v.ab(), v.padding) }

// Unpadded 不带填充的文本
func (v Base32) Unpadded() string {
	return strings.TrimRight(v.String(), string(alphabet.PadChar))
}

func (v Base32) PlainText() (string, error) { return decodeText(v.value, v.encoding) }

func (v Base32) PlainTextWith(enc encoding.Encoding) (string, error) {
	return decodeText(v.value, enc)
}

func (v Base32) Equal(other Base32) bool {
	return equal(v.ab(), v.value, other.ab(), other.value)
}

func (v Base32) HashCode() uint64 { return hashCode(v.ab(), v.value) }
