package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/digest"
	"github.com/treeforest/easybase/pkg/errs"
	"github.com/treeforest/easybase/text"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// 对外服务配置
	HttpServerPort int `yaml:"http_server_port"` // web监听端口

	// 自定义字母表存储
	LevelDBPath string `yaml:"leveldb_path"` // 数据库路径

	// 编码默认值
	Base32Alphabet string `yaml:"base32_alphabet"` // 默认 base32 字母表名
	Base58Alphabet string `yaml:"base58_alphabet"` // 默认 base58 字母表名
	Padding        bool   `yaml:"padding"`         // base32/base64 是否填充
	TextEncoding   string `yaml:"text_encoding"`   // 明文字符编码，如 utf-8, iso-8859-1
	ChecksumHash   string `yaml:"checksum_hash"`   // base58 校验码哈希算法

	LogLevel string `yaml:"log_level"` // debug 时打开调试日志
}

func DefaultConfig() *Config {
	return &Config{
		HttpServerPort: 8080,
		LevelDBPath:    ".",
		Base32Alphabet: alphabet.Base32.Name(),
		Base58Alphabet: alphabet.Base58.Name(),
		Padding:        true,
		TextEncoding:   "utf-8",
		ChecksumHash:   digest.SHA256.Name(),
		LogLevel:       "info",
	}
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Load 读取配置文件，未出现的字段保持默认值
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	conf := DefaultConfig()
	if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate 检查配置中的名字都能解析
func (c *Config) Validate() error {
	if _, err := c.Encoding(); err != nil {
		return err
	}
	if _, err := c.Checksum(); err != nil {
		return err
	}
	return nil
}

// Encoding 解析明文字符编码
func (c *Config) Encoding() (encoding.Encoding, error) {
	if c.TextEncoding == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(c.TextEncoding)
	if err != nil {
		return nil, errors.WithStack(errs.Configuration("unknown text encoding %q", c.TextEncoding))
	}
	return enc, nil
}

// Checksum 解析校验码哈希算法
func (c *Config) Checksum() (digest.Algorithm, error) {
	if c.ChecksumHash == "" {
		return digest.SHA256, nil
	}
	alg, ok := digest.Lookup(c.ChecksumHash)
	if !ok {
		return digest.Algorithm{}, errors.WithStack(errs.Configuration("unknown checksum hash %q", c.ChecksumHash))
	}
	return alg, nil
}

// Options 按配置生成 text.Options，字母表从 registry 中查找
func (c *Config) Options(registry *alphabet.Registry, radix int) (text.Options, error) {
	enc, err := c.Encoding()
	if err != nil {
		return text.Options{}, err
	}
	alg, err := c.Checksum()
	if err != nil {
		return text.Options{}, err
	}

	opts := text.Options{NoPadding: !c.Padding, TextEncoding: enc, Checksum: alg}

	name := ""
	switch radix {
	case 32:
		name = c.Base32Alphabet
	case 58:
		name = c.Base58Alphabet
	}
	if name != "" {
		a, ok := registry.Get(name)
		if !ok {
			return text.Options{}, errors.WithStack(errs.Configuration("unknown alphabet %q", name))
		}
		if a.Radix() != radix {
			return text.Options{}, errors.WithStack(errs.Configuration("alphabet %q is not a base%d alphabet", name, radix))
		}
		opts.Alphabet = a
	}
	return opts, nil
}
