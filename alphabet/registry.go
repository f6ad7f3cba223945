package alphabet

import (
	"sort"
	"strings"
	"sync"

	"github.com/treeforest/easybase/pkg/errs"
)

// Registry 预置字母表 + 用户注册的自定义字母表
type Registry struct {
	locker sync.RWMutex
	custom map[string]*Alphabet // lower(name) => alphabet
}

func NewRegistry() *Registry {
	return &Registry{custom: map[string]*Alphabet{}}
}

// Register 注册自定义字母表，名字不能与已有字母表重复
func (r *Registry) Register(a *Alphabet) error {
	if a == nil {
		return errs.Configuration("nil alphabet")
	}
	key := strings.ToLower(a.name)
	if key == "" {
		return errs.Configuration("alphabet name is empty")
	}

	r.locker.Lock()
	defer r.locker.Unlock()

	if _, ok := Lookup(key); ok {
		return errs.Configuration("alphabet %q is a preset", a.name)
	}
	if _, ok := r.custom[key]; ok {
		return errs.Configuration("alphabet %q already registered", a.name)
	}
	r.custom[key] = a
	return nil
}

// Remove 删除自定义字母表，预置字母表不能删除
func (r *Registry) Remove(name string) bool {
	key := strings.ToLower(name)
	r.locker.Lock()
	defer r.locker.Unlock()
	if _, ok := r.custom[key]; !ok {
		return false
	}
	delete(r.custom, key)
	return true
}

// Get 先查预置，再查自定义
func (r *Registry) Get(name string) (*Alphabet, bool) {
	if a, ok := Lookup(name); ok {
		return a, true
	}
	r.locker.RLock()
	defer r.locker.RUnlock()
	a, ok := r.custom[strings.ToLower(name)]
	return a, ok
}

// List 预置字母表在前，自定义字母表按名字（不区分大小写）排序在后
func (r *Registry) List() []*Alphabet {
	out := Presets()

	r.locker.RLock()
	custom := make([]*Alphabet, 0, len(r.custom))
	for _, a := range r.custom {
		custom = append(custom, a)
	}
	r.locker.RUnlock()

	sort.Slice(custom, func(i, j int) bool {
		return strings.ToLower(custom[i].name) < strings.ToLower(custom[j].name)
	})
	return append(out, custom...)
}
