package text

import (
	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/base64"
	"golang.org/x/text/encoding"
)

// Base64 base64 值
type Base64 struct {
	value    []byte
	alphabet *alphabet.Alphabet
	padding  bool
	encoding encoding.Encoding
}

func NewBase64(b []byte, opts Options) (Base64, error) {
	a, err := opts.alphabet(64)
	if err != nil {
		return Base64{}, errors.WithStack(err)
	}
	return Base64{value: clone(b), alphabet: a, padding: !opts.NoPadding, encoding: opts.TextEncoding}, nil
}

func Base64FromString(s string, opts Options) (Base64, error) {
	b, err := encodeText(s, opts.textEncoding())
	if err != nil {
		return Base64{}, err
	}
	return NewBase64(b, opts)
}

func ParseBase64(s string, opts Options) (Base64, error) {
	a, err := opts.alphabet(64)
	if err != nil {
		return Base64{}, errors.WithStack(err)
	}
	b, err := base64.Decode(s, a)
	if err != nil {
		return Base64{}, errors.WithStack(err)
	}
	return Base64{value: b, alphabet: a, padding: !opts.NoPadding, encoding: opts.TextEncoding}, nil
}

func (v Base64) ab() *alphabet.Alphabet {
	if v.alphabet == nil {
		return alphabet.Base64
	}
	return v.alphabet
}

func (v Base64) Alphabet() *alphabet.Alphabet { return v.ab() }

func (v Base64) Bytes() []byte { return clone(v.value) }

func (v Base64) String() string { return base64.Encode(v.value, v.ab(), v.padding) }

func (v Base64) PlainText() (string, error) { return decodeText(v.value, v.encoding) }

func (v Base64) PlainTextWith(enc encoding.Encoding) (string, error) {
	return decodeText(v.value, enc)
}

func (v Base64) Equal(other Base64) bool {
	return equal(v.ab(), v.value, other.ab(), other.value)
}

func (v Base64) HashCode() uint64 { return hashCode(v.ab(), v.value) }
