package client

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/easybase/pkg/errs"
)

func newConfig(t *testing.T) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("leveldb_path: %s\nbase32_alphabet: base32hex\n", dir)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	err := New(&out).Run(args)
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	conf := newConfig(t)

	out, err := run(t, "encode", "-conf", conf, "-scheme", "base32", "1234567890")
	require.NoError(t, err)
	require.Equal(t, "64P36D1L6ORJGE9G\n", out)

	out, err = run(t, "encode", "-conf", conf, "-scheme", "base58", "-hex", "00000102")
	require.NoError(t, err)
	require.Equal(t, "115T\n", out)

	out, err = run(t, "encode", "-conf", conf, "-scheme", "base58", "-checksum", "1234567890")
	require.NoError(t, err)
	require.Equal(t, "K5zqBMZXFNFYSLJZTdx\n", out)

	out, err = run(t, "decode", "-conf", conf, "-scheme", "base58", "-checksum", "K5zqBMZXFNFYSLJZTdx")
	require.NoError(t, err)
	require.Contains(t, out, "plain: 1234567890")

	out, err = run(t, "decode", "-conf", conf, "-scheme", "base16", "31323334353637383930")
	require.NoError(t, err)
	require.Contains(t, out, "hex:   31323334353637383930")

	_, err = run(t, "decode", "-conf", conf, "-scheme", "base58", "-checksum", "K5zqBMZXFNFYSLJZTdy")
	require.Error(t, err)
}

func TestRegisterAndList(t *testing.T) {
	conf := newConfig(t)

	_, err := run(t, "register", "-conf", conf, "-name", "lower", "-radix", "32", "-symbols", "abcdefghijklmnopqrstuvwxyz234567")
	require.NoError(t, err)

	_, err = run(t, "register", "-conf", conf, "-name", "bitcoin", "-radix", "58", "-symbols", "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")
	require.Error(t, err)

	out, err := run(t, "alphabets", "-conf", conf)
	require.NoError(t, err)
	require.Contains(t, out, "bitcoin")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "abcdefghijklmnopqrstuvwxyz234567"))

	out, err = run(t, "encode", "-conf", conf, "-scheme", "base32", "-alphabet", "lower", "-nopad", "f")
	require.NoError(t, err)
	require.Equal(t, "my\n", out)
}

func TestRegisterDuplicate(t *testing.T) {
	conf := newConfig(t)

	_, err := run(t, "register", "-conf", conf, "-name", "lower", "-radix", "32", "-symbols", "abcdefghijklmnopqrstuvwxyz234567")
	require.NoError(t, err)

	// 同名（不区分大小写）不能覆盖，即使基数不同
	_, err = run(t, "register", "-conf", conf, "-name", "lower", "-radix", "32", "-symbols", "abcdefghijklmnopqrstuvwxyz234567")
	require.True(t, errs.IsConfiguration(err))

	_, err = run(t, "register", "-conf", conf, "-name", "LOWER", "-radix", "58", "-symbols", "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ")
	require.True(t, errs.IsConfiguration(err))

	out, err := run(t, "encode", "-conf", conf, "-scheme", "base32", "-alphabet", "lower", "f")
	require.NoError(t, err)
	require.Equal(t, "my======\n", out)
}

func TestAlphabetRadixMismatch(t *testing.T) {
	conf := newConfig(t)

	_, err := run(t, "encode", "-conf", conf, "-scheme", "base16", "-alphabet", "ripple", "x")
	require.True(t, errs.IsConfiguration(err))

	_, err = run(t, "decode", "-conf", conf, "-scheme", "base58", "-alphabet", "base32", "zzzz")
	require.True(t, errs.IsConfiguration(err))

	_, err = run(t, "encode", "-conf", conf, "-scheme", "base32", "-alphabet", "nosuch", "x")
	require.True(t, errs.IsConfiguration(err))
}

func TestUsage(t *testing.T) {
	out, err := run(t)
	require.Equal(t, ErrUsage, err)
	require.Contains(t, out, "Usage:")

	_, err = run(t, "unknown")
	require.Equal(t, ErrUsage, err)

	_, err = run(t, "encode", "-scheme", "base32")
	require.Equal(t, ErrUsage, err)
}
