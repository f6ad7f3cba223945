// Package base16 implements lowercase hexadecimal encoding.
//
// The alphabet is fixed to 0-9a-f. Decoding accepts either case.
package base16

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/easybase/pkg/errs"
)

const scheme = "base16"

// Encode 每个字节编码成两个小写十六进制字符，高四位在前
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode 解码十六进制字符串，长度必须为偶数
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err == nil {
		return b, nil
	}

	var invalid hex.InvalidByteError
	if errors.As(err, &invalid) {
		return nil, errs.Format(scheme, strings.IndexByte(s, byte(invalid)), "invalid character %q", byte(invalid))
	}
	if err == hex.ErrLength {
		return nil, errs.Format(scheme, -1, "odd length %d", len(s))
	}
	return nil, errors.WithStack(err)
}

func EncodedLen(n int) int { return n * 2 }

func DecodedLen(n int) int { return n / 2 }
