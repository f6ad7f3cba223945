// Package text provides immutable values that own a decoded byte buffer
// and render it as Base-16, Base-32, Base-58 or Base-64 text.
//
// Values are built through named factories only. Each factory takes an
// Options structure; the zero Options selects the scheme's default
// alphabet, padding where the scheme has it, UTF-8 text and SHA-256
// checksums.
//
// String returns the encoded form. PlainText decodes the payload bytes
// as text, which is a different operation.
package text

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/digest"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Options 工厂函数的配置
type Options struct {
	// Alphabet 为 nil 时使用该编码的默认字母表。Base16 忽略此项。
	Alphabet *alphabet.Alphabet
	// NoPadding 关闭 base32/base64 的 '=' 填充
	NoPadding bool
	// TextEncoding FromString/PlainText 使用的字符编码，默认 UTF-8
	TextEncoding encoding.Encoding
	// Checksum base58 校验码使用的哈希算法，默认 SHA-256
	Checksum digest.Algorithm
}

func (o Options) alphabet(radix int) (*alphabet.Alphabet, error) {
	if o.Alphabet == nil {
		return alphabet.Default(radix), nil
	}
	if err := o.Alphabet.CheckRadix(radix); err != nil {
		return nil, err
	}
	return o.Alphabet, nil
}

func (o Options) textEncoding() encoding.Encoding {
	return orUTF8(o.TextEncoding)
}

func (o Options) checksum() digest.Algorithm {
	if o.Checksum.IsZero() {
		return digest.SHA256
	}
	return o.Checksum
}

func orUTF8(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return unicode.UTF8
	}
	return enc
}

// PlainBytes 按 opts.TextEncoding 把明文转换为字节
func PlainBytes(s string, opts Options) ([]byte, error) {
	return encodeText(s, opts.textEncoding())
}

// encodeText 按字符编码把文本转换为字节
func encodeText(s string, enc encoding.Encoding) ([]byte, error) {
	b, err := orUTF8(enc).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrap(err, "encode plain text")
	}
	return b, nil
}

// decodeText 按字符编码把字节转换为文本
func decodeText(b []byte, enc encoding.Encoding) (string, error) {
	s, err := orUTF8(enc).NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(err, "decode plain text")
	}
	return string(s), nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func hashCode(a *alphabet.Alphabet, value []byte) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(a.Symbols())
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(value)
	return d.Sum64()
}

func equal(a1 *alphabet.Alphabet, v1 []byte, a2 *alphabet.Alphabet, v2 []byte) bool {
	return a1.Equal(a2) && bytes.Equal(v1, v2)
}
