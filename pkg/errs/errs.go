package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat 输入文本不符合编码格式
	ErrFormat = errors.New("format error")
	// ErrChecksum 校验码不匹配
	ErrChecksum = errors.New("checksum error")
	// ErrConfiguration 字母表等配置非法
	ErrConfiguration = errors.New("configuration error")
)

// FormatError 输入中包含字母表以外的字符，或长度不合法
type FormatError struct {
	Scheme string // base16 / base32 / base58 ...
	Reason string
	Offset int // 出错字符的位置，-1 表示与位置无关
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Scheme, e.Reason)
	}
	return fmt.Sprintf("%s: %s at offset %d", e.Scheme, e.Reason, e.Offset)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ChecksumError base58 校验码错误
type ChecksumError struct {
	Expected [4]byte
	Actual   [4]byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum error: expected %x, got %x", e.Expected, e.Actual)
}

func (e *ChecksumError) Is(target error) bool { return target == ErrChecksum }

// ConfigurationError 字母表长度不对或包含重复字符
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func Format(scheme string, offset int, format string, args ...interface{}) error {
	return &FormatError{Scheme: scheme, Reason: fmt.Sprintf(format, args...), Offset: offset}
}

func Configuration(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func IsFormat(err error) bool        { return errors.Is(err, ErrFormat) }
func IsChecksum(err error) bool      { return errors.Is(err, ErrChecksum) }
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }
