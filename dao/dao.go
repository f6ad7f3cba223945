package dao

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/treeforest/easybase/alphabet"
	log "github.com/treeforest/logger"
)

const (
	dbName         = "ALPHABET"     // 数据库名
	alphabetPrefix = "__alphabet__" // 自定义字母表 key 前缀

	bloomEstimate = 10000
	bloomFPRate   = 0.01
)

var ErrNotFound = errors.New("alphabet not found")

// record 持久化的字母表
type record struct {
	Name    string
	Symbols string
	Radix   int
}

func IsNotExistDB(path string) bool {
	_, err := os.Stat(filepath.Join(path, dbName))
	return os.IsNotExist(err)
}

// DAO 自定义字母表存储对象
type DAO struct {
	*leveldb.DB
	locker sync.Mutex
	filter *bloom.BloomFilter // 名字的 Bloom 过滤器，快速判断不存在
}

// Open 打开（不存在则创建）数据库，并用已有的名字初始化过滤器
func Open(dbPath string) (*DAO, error) {
	log.Debug("db path:", filepath.Join(dbPath, dbName))
	levelDB, err := leveldb.OpenFile(filepath.Join(dbPath, dbName), &opt.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb [%s]", dbName)
	}
	return newDAO(levelDB)
}

func newDAO(db *leveldb.DB) (*DAO, error) {
	o := &DAO{DB: db, filter: bloom.NewWithEstimates(bloomEstimate, bloomFPRate)}

	iter := db.NewIterator(util.BytesPrefix([]byte(alphabetPrefix)), nil)
	for iter.Next() {
		o.filter.Add(iter.Key())
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "load alphabet names")
	}
	return o, nil
}

func key(name string) []byte {
	return []byte(alphabetPrefix + strings.ToLower(name))
}

func (o *DAO) Close() error {
	return o.DB.Close()
}

// Has 先查过滤器，过滤器判定存在时再查数据库
func (o *DAO) Has(name string) (bool, error) {
	k := key(name)
	o.locker.Lock()
	maybe := o.filter.Test(k)
	o.locker.Unlock()
	if !maybe {
		return false, nil
	}
	return o.DB.Has(k, nil)
}

// Put 保存字母表，名字已存在时覆盖
func (o *DAO) Put(a *alphabet.Alphabet) error {
	data, err := encode(record{Name: a.Name(), Symbols: a.Symbols(), Radix: a.Radix()})
	if err != nil {
		return err
	}

	k := key(a.Name())
	err = o.DoTransaction(func(trans *leveldb.Transaction) error {
		if err := trans.Put(k, data, &opt.WriteOptions{Sync: true}); err != nil {
			return fmt.Errorf("insert alphabet failed: %v", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.locker.Lock()
	o.filter.Add(k)
	o.locker.Unlock()
	return nil
}

// Get 读取字母表并重新校验
func (o *DAO) Get(name string) (*alphabet.Alphabet, error) {
	ok, err := o.Has(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}

	data, err := o.DB.Get(key(name), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, errors.Wrap(ErrNotFound, name)
		}
		return nil, errors.Wrap(err, "get alphabet")
	}
	return decode(data)
}

// Delete 删除字母表。过滤器不支持删除，误判由 Has 中的数据库查询兜底。
func (o *DAO) Delete(name string) error {
	return o.DoTransaction(func(trans *leveldb.Transaction) error {
		return trans.Delete(key(name), nil)
	})
}

// List 按 key 顺序返回全部字母表
func (o *DAO) List() ([]*alphabet.Alphabet, error) {
	var out []*alphabet.Alphabet
	iter := o.DB.NewIterator(util.BytesPrefix([]byte(alphabetPrefix)), nil)
	defer iter.Release()
	for iter.Next() {
		a, err := decode(iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// LoadInto 把已保存的字母表注册到 registry，返回注册数量
func (o *DAO) LoadInto(registry *alphabet.Registry) (int, error) {
	list, err := o.List()
	if err != nil {
		return 0, err
	}
	for _, a := range list {
		if err = registry.Register(a); err != nil {
			return 0, errors.Wrapf(err, "register stored alphabet %q", a.Name())
		}
	}
	return len(list), nil
}

// DoTransaction 事务操作
func (o *DAO) DoTransaction(fn func(trans *leveldb.Transaction) error) error {
	trans, err := o.DB.OpenTransaction()
	if err != nil {
		return fmt.Errorf("open transaction failed: %v", err)
	}
	defer func() {
		if err != nil {
			// 事务提交失败，销毁事务
			trans.Discard()
		}
	}()

	if err = fn(trans); err != nil {
		return err
	}

	err = trans.Commit()
	if err != nil {
		return fmt.Errorf("commit failed: %v", err)
	}

	return nil
}

func encode(r record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("gob encode failed: [%v] [%v]", r, err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*alphabet.Alphabet, error) {
	var r record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&r); err != nil {
		return nil, fmt.Errorf("gob decode failed: data[%x] error[%v]", data, err)
	}
	// 数据库内容同样需要满足字母表约束
	a, err := alphabet.NewRadix(r.Radix, r.Name, r.Symbols)
	if err != nil {
		return nil, errors.Wrapf(err, "stored alphabet %q", r.Name)
	}
	return a, nil
}
