package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/digest"
	"github.com/treeforest/easybase/pkg/errs"
	"golang.org/x/text/encoding/charmap"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	require.NoError(t, conf.Validate())

	opts, err := conf.Options(alphabet.NewRegistry(), 32)
	require.NoError(t, err)
	require.Same(t, alphabet.Base32, opts.Alphabet)
	require.False(t, opts.NoPadding)
	require.Equal(t, digest.SHA256.Name(), opts.Checksum.Name())

	data, err := conf.Marshal()
	require.NoError(t, err)
	other := new(Config)
	require.NoError(t, other.Unmarshal(data))
	require.Equal(t, conf, other)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
http_server_port: 9090
base32_alphabet: base32hex
base58_alphabet: flickr
padding: false
text_encoding: iso-8859-1
checksum_hash: sha3-256
`)
	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, conf.HttpServerPort)
	require.Equal(t, ".", conf.LevelDBPath)

	registry := alphabet.NewRegistry()
	opts, err := conf.Options(registry, 32)
	require.NoError(t, err)
	require.Same(t, alphabet.Base32Hex, opts.Alphabet)
	require.True(t, opts.NoPadding)
	require.Equal(t, charmap.Windows1252, opts.TextEncoding)

	opts, err = conf.Options(registry, 58)
	require.NoError(t, err)
	require.Same(t, alphabet.Flickr, opts.Alphabet)
	require.Equal(t, digest.SHA3_256.Name(), opts.Checksum.Name())

	opts, err = conf.Options(registry, 16)
	require.NoError(t, err)
	require.Nil(t, opts.Alphabet)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "text_encoding: klingon\n"))
	require.True(t, errs.IsConfiguration(err))

	_, err = Load(writeConfig(t, "checksum_hash: md5\n"))
	require.True(t, errs.IsConfiguration(err))

	conf, err := Load(writeConfig(t, "base58_alphabet: nope\n"))
	require.NoError(t, err)
	_, err = conf.Options(alphabet.NewRegistry(), 58)
	require.True(t, errs.IsConfiguration(err))
}

func TestOptionsRadixMismatch(t *testing.T) {
	conf := DefaultConfig()
	conf.Base32Alphabet = alphabet.Ripple.Name()
	_, err := conf.Options(alphabet.NewRegistry(), 32)
	require.True(t, errs.IsConfiguration(err))
}
