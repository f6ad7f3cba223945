package client

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/config"
	"github.com/treeforest/easybase/dao"
	"github.com/treeforest/easybase/pkg/errs"
	"github.com/treeforest/easybase/pkg/graceful"
	"github.com/treeforest/easybase/server"
	"github.com/treeforest/easybase/text"
	log "github.com/treeforest/logger"
)

// ErrUsage 参数错误，已输出用法
var ErrUsage = errors.New("usage")

type Command struct {
	out io.Writer
}

func New(out io.Writer) *Command {
	return &Command{out: out}
}

func (c *Command) printUsage() {
	fmt.Fprintln(c.out, "Usage:")
	// 编码
	fmt.Fprintf(c.out, "\tencode -scheme SCHEME [-alphabet NAME] [-nopad] [-checksum] [-hex] DATA -- 编码\n")
	fmt.Fprintf(c.out, "\t\t-scheme -- base16 | base32 | base58 | base64\n")
	fmt.Fprintf(c.out, "\t\t-hex -- DATA 为十六进制字节，而不是明文\n")
	// 解码
	fmt.Fprintf(c.out, "\tdecode -scheme SCHEME [-alphabet NAME] [-checksum] TEXT -- 解码\n")
	// 字母表
	fmt.Fprintf(c.out, "\talphabets -- 输出字母表列表\n")
	fmt.Fprintf(c.out, "\tregister -name NAME -radix N -symbols SYMBOLS -- 注册自定义字母表\n")
	// 服务
	fmt.Fprintf(c.out, "\tserve -- 启动 http 服务\n")
	fmt.Fprintf(c.out, "\t所有命令都支持 -conf PATH 指定配置文件\n")
	fmt.Fprintf(c.out, "\tencode/decode/alphabets/register 支持 -remote URL 访问 http 服务\n")
}

// Run args 不包含程序名
func (c *Command) Run(args []string) error {
	// 编码
	cmdEncode := flag.NewFlagSet("encode", flag.ContinueOnError)
	encodeConf := cmdEncode.String("conf", "config.yaml", "配置文件路径")
	encodeScheme := cmdEncode.String("scheme", "base58", "编码方式")
	encodeAlphabet := cmdEncode.String("alphabet", "", "字母表名")
	encodeNoPad := cmdEncode.Bool("nopad", false, "不填充")
	encodeChecksum := cmdEncode.Bool("checksum", false, "base58 追加校验码")
	encodeHex := cmdEncode.Bool("hex", false, "输入为十六进制字节")
	encodeRemote := cmdEncode.String("remote", "", "http 服务地址，非空时由服务端编码")
	// 解码
	cmdDecode := flag.NewFlagSet("decode", flag.ContinueOnError)
	decodeConf := cmdDecode.String("conf", "config.yaml", "配置文件路径")
	decodeScheme := cmdDecode.String("scheme", "base58", "编码方式")
	decodeAlphabet := cmdDecode.String("alphabet", "", "字母表名")
	decodeChecksum := cmdDecode.Bool("checksum", false, "base58 校验码")
	decodeRemote := cmdDecode.String("remote", "", "http 服务地址，非空时由服务端解码")
	// 字母表
	cmdAlphabets := flag.NewFlagSet("alphabets", flag.ContinueOnError)
	alphabetsConf := cmdAlphabets.String("conf", "config.yaml", "配置文件路径")
	alphabetsRemote := cmdAlphabets.String("remote", "", "http 服务地址")
	cmdRegister := flag.NewFlagSet("register", flag.ContinueOnError)
	registerConf := cmdRegister.String("conf", "config.yaml", "配置文件路径")
	registerName := cmdRegister.String("name", "", "字母表名")
	registerRadix := cmdRegister.Int("radix", 0, "基数")
	registerSymbols := cmdRegister.String("symbols", "", "字符序列")
	registerRemote := cmdRegister.String("remote", "", "http 服务地址")
	// 服务
	cmdServe := flag.NewFlagSet("serve", flag.ContinueOnError)
	serveConf := cmdServe.String("conf", "config.yaml", "配置文件路径")

	for _, f := range []*flag.FlagSet{cmdEncode, cmdDecode, cmdAlphabets, cmdRegister, cmdServe} {
		f.SetOutput(c.out)
	}

	if len(args) < 1 {
		c.printUsage()
		return ErrUsage
	}

	var err error
	switch args[0] {
	case "encode":
		if !parseCommand(cmdEncode, args[1:]) || cmdEncode.NArg() != 1 {
			goto HELP
		}
		if *encodeRemote != "" {
			err = c.remoteEncode(*encodeRemote, *encodeScheme, *encodeAlphabet, !*encodeNoPad, *encodeChecksum, *encodeHex, cmdEncode.Arg(0))
			break
		}
		err = c.encode(*encodeConf, *encodeScheme, *encodeAlphabet, !*encodeNoPad, *encodeChecksum, *encodeHex, cmdEncode.Arg(0))
	case "decode":
		if !parseCommand(cmdDecode, args[1:]) || cmdDecode.NArg() != 1 {
			goto HELP
		}
		if *decodeRemote != "" {
			err = c.remoteDecode(*decodeRemote, *decodeScheme, *decodeAlphabet, *decodeChecksum, cmdDecode.Arg(0))
			break
		}
		err = c.decode(*decodeConf, *decodeScheme, *decodeAlphabet, *decodeChecksum, cmdDecode.Arg(0))
	case "alphabets":
		if !parseCommand(cmdAlphabets, args[1:]) {
			goto HELP
		}
		if *alphabetsRemote != "" {
			err = c.remoteAlphabets(*alphabetsRemote)
			break
		}
		err = c.printAlphabets(*alphabetsConf)
	case "register":
		if !parseCommand(cmdRegister, args[1:]) || *registerName == "" || *registerRadix == 0 {
			goto HELP
		}
		if *registerRemote != "" {
			err = NewHttpClient(*registerRemote).Register(AlphabetEntry{Name: *registerName, Radix: *registerRadix, Symbols: *registerSymbols})
			break
		}
		err = c.register(*registerConf, *registerName, *registerRadix, *registerSymbols)
	case "serve":
		if !parseCommand(cmdServe, args[1:]) {
			goto HELP
		}
		err = c.serve(*serveConf)
	default:
		goto HELP
	}
	return err
HELP:
	c.printUsage()
	return ErrUsage
}

func parseCommand(f *flag.FlagSet, args []string) bool {
	if err := f.Parse(args); err != nil {
		log.Warn("parse command failed: ", err)
		return false
	}
	return f.Parsed()
}

// loadConfig 配置文件不存在时使用默认配置
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("config file not found, use default config: ", path)
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// loadRegistry 从数据库加载自定义字母表
func loadRegistry(conf *config.Config) (*alphabet.Registry, error) {
	registry := alphabet.NewRegistry()
	if dao.IsNotExistDB(conf.LevelDBPath) {
		return registry, nil
	}
	store, err := dao.Open(conf.LevelDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	n, err := store.LoadInto(registry)
	if err != nil {
		return nil, err
	}
	log.Debugf("load %d custom alphabets", n)
	return registry, nil
}

func (c *Command) options(confPath, scheme, name string) (text.Options, int, error) {
	conf, err := loadConfig(confPath)
	if err != nil {
		return text.Options{}, 0, err
	}
	registry, err := loadRegistry(conf)
	if err != nil {
		return text.Options{}, 0, err
	}

	radix, err := server.RadixOf(scheme)
	if err != nil {
		return text.Options{}, 0, err
	}
	opts, err := conf.Options(registry, radix)
	if err != nil {
		return text.Options{}, 0, err
	}
	if name != "" {
		a, ok := registry.Get(name)
		if !ok {
			return text.Options{}, 0, errs.Configuration("unknown alphabet %q", name)
		}
		if err = a.CheckRadix(radix); err != nil {
			return text.Options{}, 0, err
		}
		opts.Alphabet = a
	}
	return opts, radix, nil
}

func (c *Command) encode(confPath, scheme, name string, padding, checksum, isHex bool, data string) error {
	opts, radix, err := c.options(confPath, scheme, name)
	if err != nil {
		return err
	}
	if !padding {
		opts.NoPadding = true
	}

	var payload []byte
	if isHex {
		payload, err = hex.DecodeString(data)
	} else {
		payload, err = text.PlainBytes(data, opts)
	}
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	encoded, err := server.Render(radix, payload, opts, checksum)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, encoded)
	return nil
}

func (c *Command) decode(confPath, scheme, name string, checksum bool, s string) error {
	opts, radix, err := c.options(confPath, scheme, name)
	if err != nil {
		return err
	}

	v, err := server.Parse(radix, s, opts, checksum)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "hex:   %x\n", v.Bytes())
	if plain, err := v.PlainText(); err == nil {
		fmt.Fprintf(c.out, "plain: %s\n", plain)
	}
	return nil
}

func (c *Command) printAlphabets(confPath string) error {
	conf, err := loadConfig(confPath)
	if err != nil {
		return err
	}
	registry, err := loadRegistry(conf)
	if err != nil {
		return err
	}
	for _, a := range registry.List() {
		fmt.Fprintf(c.out, "%-10s base%-2d %s\n", a.Name(), a.Radix(), a.Symbols())
	}
	return nil
}

func (c *Command) register(confPath, name string, radix int, symbols string) error {
	conf, err := loadConfig(confPath)
	if err != nil {
		return err
	}
	a, err := alphabet.NewRadix(radix, name, symbols)
	if err != nil {
		return err
	}
	// 与 http 服务相同的规则：不能与预置或已注册的字母表重名
	registry, err := loadRegistry(conf)
	if err != nil {
		return err
	}
	if err = registry.Register(a); err != nil {
		return err
	}

	store, err := dao.Open(conf.LevelDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err = store.Put(a); err != nil {
		return err
	}
	log.Infof("register alphabet success, name=%s", strings.ToLower(a.Name()))
	return nil
}

func (c *Command) serve(confPath string) error {
	conf, err := loadConfig(confPath)
	if err != nil {
		return err
	}
	if conf.LogLevel == "debug" {
		log.SetLevel(log.DEBUG)
	}

	store, err := dao.Open(conf.LevelDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	registry := alphabet.NewRegistry()
	if _, err = store.LoadInto(registry); err != nil {
		return err
	}

	srv := server.NewHttpServer(conf, registry, store)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()
	go graceful.Stop(func() {
		log.Info("http server stopping...")
		_ = srv.Close()
	})

	return <-errCh
}

func (c *Command) remoteEncode(baseUrl, scheme, name string, padding, checksum, isHex bool, data string) error {
	req := EncodeRequest{Scheme: scheme, Alphabet: name, Checksum: checksum}
	if !padding {
		req.Padding = &padding
	}
	if isHex {
		req.Hex = data
	} else {
		req.Data = data
	}
	encoded, err := NewHttpClient(baseUrl).Encode(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, encoded)
	return nil
}

func (c *Command) remoteDecode(baseUrl, scheme, name string, checksum bool, s string) error {
	resp, err := NewHttpClient(baseUrl).Decode(DecodeRequest{Scheme: scheme, Alphabet: name, Checksum: checksum, Text: s})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "hex:   %s\n", resp.Hex)
	if resp.Plain != "" {
		fmt.Fprintf(c.out, "plain: %s\n", resp.Plain)
	}
	return nil
}

func (c *Command) remoteAlphabets(baseUrl string) error {
	entries, err := NewHttpClient(baseUrl).Alphabets()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "%-10s base%-2d %s\n", e.Name, e.Radix, e.Symbols)
	}
	return nil
}
