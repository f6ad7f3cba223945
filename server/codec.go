package server

import (
	"strings"

	"github.com/treeforest/easybase/pkg/errs"
	"github.com/treeforest/easybase/text"
)

var schemes = map[string]int{
	"base16": 16,
	"base32": 32,
	"base58": 58,
	"base64": 64,
}

// RadixOf 编码名到基数
func RadixOf(scheme string) (int, error) {
	radix, ok := schemes[strings.ToLower(scheme)]
	if !ok {
		return 0, errs.Configuration("unknown scheme %q", scheme)
	}
	return radix, nil
}

// Render 把字节编码为文本
func Render(radix int, payload []byte, opts text.Options, checksum bool) (string, error) {
	switch radix {
	case 16:
		return text.NewBase16(payload, opts).String(), nil
	case 32:
		v, err := text.NewBase32(payload, opts)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case 58:
		v, err := text.NewBase58(payload, opts)
		if err != nil {
			return "", err
		}
		if checksum {
			return v.StringWithChecksum(), nil
		}
		return v.String(), nil
	case 64:
		v, err := text.NewBase64(payload, opts)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	return "", errs.Configuration("unsupported radix %d", radix)
}

// Value 各编码值的公共方法
type Value interface {
	Bytes() []byte
	PlainText() (string, error)
}

// Parse 解析文本
func Parse(radix int, s string, opts text.Options, checksum bool) (Value, error) {
	switch radix {
	case 16:
		return text.ParseBase16(s, opts)
	case 32:
		return text.ParseBase32(s, opts)
	case 58:
		if checksum {
			return text.ParseBase58WithChecksum(s, opts)
		}
		return text.ParseBase58(s, opts)
	case 64:
		return text.ParseBase64(s, opts)
	}
	return nil, errs.Configuration("unsupported radix %d", radix)
}
