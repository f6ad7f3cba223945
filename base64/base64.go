// Package base64 provides base64 encoding over the standard and URL safe
// alphabets (RFC 4648 Sections 4 and 5).
//
// Decoding accepts input with or without trailing '=' padding.
package base64

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/pkg/errs"
)

const scheme = "base64"

func encoding(a *alphabet.Alphabet) *base64.Encoding {
	if a == nil {
		a = alphabet.Base64
	}
	return base64.NewEncoding(a.Symbols()).WithPadding(base64.NoPadding)
}

// Encode returns the base64 encoded string of b. It panics if a does not
// hold 64 symbols.
func Encode(b []byte, a *alphabet.Alphabet, padding bool) string {
	if a != nil {
		if err := a.CheckRadix(64); err != nil {
			panic("base64: " + err.Error())
		}
	}
	s := encoding(a).EncodeToString(b)
	if padding {
		if n := len(s) % 4; n > 0 {
			s += strings.Repeat(string(alphabet.PadChar), 4-n)
		}
	}
	return s
}

// Decode strips any trailing padding and decodes the rest. Line breaks
// are rejected rather than skipped.
func Decode(s string, a *alphabet.Alphabet) ([]byte, error) {
	if a != nil {
		if err := a.CheckRadix(64); err != nil {
			return nil, err
		}
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, errs.Format(scheme, i, "invalid character %q", s[i])
	}
	trimmed := strings.TrimRight(s, string(alphabet.PadChar))
	b, err := encoding(a).DecodeString(trimmed)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, errs.Format(scheme, int(corrupt), "invalid input")
		}
		return nil, errors.WithStack(err)
	}
	return b, nil
}
