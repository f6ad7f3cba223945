// Package base32 implements base32 encoding over an arbitrary 32 symbol
// alphabet.
//
// Input bits are packed into 5 bit groups most significant bit first.
// A short final group is zero extended on the right. With padding the
// output is filled with '=' up to a multiple of 8 characters.
//
// Decoding is case sensitive and ignores non-zero bits left over in the
// final symbol.
package base32

import (
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/pkg/errs"
)

const scheme = "base32"

// EncodedLen 编码后的长度
func EncodedLen(n int, padding bool) int {
	if padding {
		return (n + 4) / 5 * 8
	}
	return (n*8 + 4) / 5
}

// DecodedLen 去掉填充后 n 个字符最多能解出的字节数
func DecodedLen(n int) int {
	return n * 5 / 8
}

// Encode 编码，a 为 nil 时使用 RFC4648 字母表。a 不是32个字符时 panic。
func Encode(b []byte, a *alphabet.Alphabet, padding bool) string {
	if a == nil {
		a = alphabet.Base32
	}
	if err := a.CheckRadix(32); err != nil {
		panic("base32: " + err.Error())
	}

	out := make([]byte, 0, EncodedLen(len(b), padding))
	var (
		acc  uint32 // 未输出的比特
		bits uint   // acc 中有效比特数
	)
	for _, c := range b {
		acc = acc<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, a.Symbol(int(acc>>bits&0x1f)))
		}
	}
	if bits > 0 {
		// 不足5位，低位补0
		out = append(out, a.Symbol(int(acc<<(5-bits)&0x1f)))
	}

	if padding {
		for len(out)%8 != 0 {
			out = append(out, alphabet.PadChar)
		}
	}
	return string(out)
}

// Decode 解码，尾部的填充字符会被忽略
func Decode(s string, a *alphabet.Alphabet) ([]byte, error) {
	if a == nil {
		a = alphabet.Base32
	}
	if err := a.CheckRadix(32); err != nil {
		return nil, err
	}

	end := len(s)
	for end > 0 && s[end-1] == alphabet.PadChar {
		end--
	}
	switch end % 8 {
	case 1, 3, 6:
		return nil, errs.Format(scheme, -1, "invalid length %d", end)
	}

	out := make([]byte, 0, DecodedLen(end))
	var (
		acc  uint32
		bits uint
	)
	for i := 0; i < end; i++ {
		v, ok := a.Index(s[i])
		if !ok {
			return nil, errs.Format(scheme, i, "invalid character %q", s[i])
		}
		acc = acc<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	// 剩余 bits 个比特不足一个字节，直接丢弃
	return out, nil
}
