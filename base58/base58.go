package base58

import (
	"math/big"

	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/pkg/errs"
)

const scheme = "base58"

var radix = big.NewInt(58)

// Encode 将 b 视为大端无符号整数，用除余法转换为58进制。
// 每个前导0字节编码为一个字母表首字符。a 为 nil 时使用比特币字母表。
// a 必须是58个字符的字母表，否则 panic。
func Encode(b []byte, a *alphabet.Alphabet) string {
	if a == nil {
		a = alphabet.Base58
	}
	if err := a.CheckRadix(58); err != nil {
		panic("base58: " + err.Error())
	}

	var (
		x    = new(big.Int).SetBytes(b) // b对应的大整数
		mod  = new(big.Int)             // 模
		zero = new(big.Int)
		dst  = make([]byte, 0, len(b)*138/100+1) // log(256)/log(58) ≈ 1.37
	)
	for x.Cmp(zero) != 0 {
		x.DivMod(x, radix, mod) // 除余法
		dst = append(dst, a.Symbol(int(mod.Int64())))
	}

	// 大整数会丢掉前导0，每个0字节补一个首字符
	for _, v := range b {
		if v != 0 {
			break
		}
		dst = append(dst, a.Zero())
	}

	reverse(dst)
	return string(dst)
}

// Decode 解码58进制字符串，前导首字符还原为0字节
func Decode(s string, a *alphabet.Alphabet) ([]byte, error) {
	if a == nil {
		a = alphabet.Base58
	}
	if err := a.CheckRadix(58); err != nil {
		return nil, err
	}

	var (
		r     = new(big.Int)
		digit = new(big.Int)
	)
	for i := 0; i < len(s); i++ {
		v, ok := a.Index(s[i])
		if !ok {
			return nil, errs.Format(scheme, i, "invalid character %q", s[i])
		}
		r.Mul(r, radix)
		r.Add(r, digit.SetInt64(int64(v)))
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == a.Zero() {
		zeros++
	}

	value := r.Bytes()
	out := make([]byte, zeros+len(value))
	copy(out[zeros:], value)
	return out, nil
}

func reverse(b []byte) {
	i, j := 0, len(b)-1
	for i < j {
		b[i], b[j] = b[j], b[i]
		i++
		j--
	}
}
