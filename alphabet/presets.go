package alphabet

import "strings"

// 预置字母表
var (
	Base16 = mustNew("base16", "0123456789abcdef", 16)

	// Base32 RFC4648 默认字母表
	Base32    = mustNew("base32", "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", 32)
	Base32Hex = mustNew("base32hex", "0123456789ABCDEFGHIJKLMNOPQRSTUV", 32)
	ZBase32   = mustNew("zbase32", "ybndrfg8ejkmcpqxot1uwisza345h769", 32)
	Geohash   = mustNew("geohash", "0123456789bcdefghjkmnpqrstuvwxyz", 32)
	Crockford = mustNew("crockford", "0123456789ABCDEFGHJKMNPQRSTVWXYZ", 32)

	// Base58 比特币字母表，去掉了 0 O I l
	Base58 = mustNew("bitcoin", "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", 58)
	Ripple = mustNew("ripple", "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz", 58)
	Flickr = mustNew("flickr", "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ", 58)

	Base64    = mustNew("base64", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", 64)
	Base64URL = mustNew("base64url", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", 64)
)

var presets = []*Alphabet{
	Base16,
	Base32, Base32Hex, ZBase32, Geohash, Crockford,
	Base58, Ripple, Flickr,
	Base64, Base64URL,
}

// Presets 返回所有预置字母表（按声明顺序）
func Presets() []*Alphabet {
	out := make([]*Alphabet, len(presets))
	copy(out, presets)
	return out
}

// Lookup 按名字查找预置字母表，不区分大小写
func Lookup(name string) (*Alphabet, bool) {
	for _, a := range presets {
		if strings.EqualFold(a.name, name) {
			return a, true
		}
	}
	return nil, false
}

// Default 返回指定基数的默认字母表
func Default(radix int) *Alphabet {
	switch radix {
	case 16:
		return Base16
	case 32:
		return Base32
	case 58:
		return Base58
	case 64:
		return Base64
	}
	return nil
}
