package text

import (
	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/base16"
	"golang.org/x/text/encoding"
)

// Base16 十六进制值
type Base16 struct {
	value    []byte
	encoding encoding.Encoding
}

// NewBase16 从字节创建
func NewBase16(b []byte, opts Options) Base16 {
	return Base16{value: clone(b), encoding: opts.TextEncoding}
}

// Base16FromString 按 opts.TextEncoding 编码明文后创建
func Base16FromString(s string, opts Options) (Base16, error) {
	b, err := encodeText(s, opts.textEncoding())
	if err != nil {
		return Base16{}, err
	}
	return Base16{value: b, encoding: opts.TextEncoding}, nil
}

// ParseBase16 解析十六进制文本
func ParseBase16(s string, opts Options) (Base16, error) {
	b, err := base16.Decode(s)
	if err != nil {
		return Base16{}, errors.WithStack(err)
	}
	return Base16{value: b, encoding: opts.TextEncoding}, nil
}

// Bytes 返回字节副本
func (v Base16) Bytes() []byte { return clone(v.value) }

func (v Base16) String() string { return base16.Encode(v.value) }

func (v Base16) PlainText() (string, error) { return decodeText(v.value, v.encoding) }

func (v Base16) PlainTextWith(enc encoding.Encoding) (string, error) {
	return decodeText(v.value, enc)
}

func (v Base16) Equal(other Base16) bool {
	return equal(alphabet.Base16, v.value, alphabet.Base16, other.value)
}

func (v Base16) HashCode() uint64 { return hashCode(alphabet.Base16, v.value) }
