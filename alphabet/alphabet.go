package alphabet

import (
	"strings"

	"github.com/treeforest/easybase/pkg/errs"
)

const (
	// PadChar base32/base64 填充字符
	PadChar = '='

	invalid = -1
)

// Alphabet 编码字母表，构造后不可变
type Alphabet struct {
	name   string
	encode []byte     // index => symbol
	decode [256]int16 // symbol => index
}

// New 创建一个 radix 个字符的字母表。字符必须是 ASCII 且互不相同。
func New(name, symbols string, radix int) (*Alphabet, error) {
	if len(symbols) != radix {
		return nil, errs.Configuration("alphabet %q must contain exactly %d symbols, got %d",
			name, radix, len(symbols))
	}

	a := &Alphabet{name: name, encode: []byte(symbols)}
	for i := range a.decode {
		a.decode[i] = invalid
	}
	for i, c := range a.encode {
		if c >= 0x80 {
			return nil, errs.Configuration("alphabet %q: symbol %d is not ASCII", name, i)
		}
		if a.decode[c] != invalid {
			return nil, errs.Configuration("alphabet %q: duplicate symbol %q", name, c)
		}
		a.decode[c] = int16(i)
	}
	return a, nil
}

func NewBase16(name, symbols string) (*Alphabet, error) {
	return New(name, symbols, 16)
}

// NewBase32 base32 字母表不能包含填充字符
func NewBase32(name, symbols string) (*Alphabet, error) {
	if strings.IndexByte(symbols, PadChar) >= 0 {
		return nil, errs.Configuration("alphabet %q: must not contain padding symbol %q", name, PadChar)
	}
	return New(name, symbols, 32)
}

func NewBase58(name, symbols string) (*Alphabet, error) {
	return New(name, symbols, 58)
}

func NewBase64(name, symbols string) (*Alphabet, error) {
	if strings.IndexByte(symbols, PadChar) >= 0 {
		return nil, errs.Configuration("alphabet %q: must not contain padding symbol %q", name, PadChar)
	}
	if strings.ContainsAny(symbols, "\r\n") {
		return nil, errs.Configuration("alphabet %q: must not contain line breaks", name)
	}
	return New(name, symbols, 64)
}

// NewRadix 按基数选择构造函数
func NewRadix(radix int, name, symbols string) (*Alphabet, error) {
	switch radix {
	case 16:
		return NewBase16(name, symbols)
	case 32:
		return NewBase32(name, symbols)
	case 58:
		return NewBase58(name, symbols)
	case 64:
		return NewBase64(name, symbols)
	}
	return nil, errs.Configuration("unsupported radix %d", radix)
}

// CheckRadix 字母表长度与基数不符时返回 ConfigurationError
func (a *Alphabet) CheckRadix(radix int) error {
	if len(a.encode) != radix {
		return errs.Configuration("alphabet %q has %d symbols, base%d needs %d",
			a.name, len(a.encode), radix, radix)
	}
	return nil
}

func (a *Alphabet) Name() string { return a.name }

func (a *Alphabet) Symbols() string { return string(a.encode) }

func (a *Alphabet) Radix() int { return len(a.encode) }

// Symbol 返回索引 i 对应的字符
func (a *Alphabet) Symbol(i int) byte { return a.encode[i] }

// Zero 索引为 0 的字符
func (a *Alphabet) Zero() byte { return a.encode[0] }

// Index 返回字符对应的索引
func (a *Alphabet) Index(c byte) (int, bool) {
	i := a.decode[c]
	if i == invalid {
		return 0, false
	}
	return int(i), true
}

// Equal 两个字母表字符序列相同则相等，与名字无关
func (a *Alphabet) Equal(other *Alphabet) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return string(a.encode) == string(other.encode)
}

func (a *Alphabet) String() string { return a.name }

func mustNew(name, symbols string, radix int) *Alphabet {
	a, err := NewRadix(radix, name, symbols)
	if err != nil {
		panic(err)
	}
	return a
}
