// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"errors"
	"sync"

	"github.com/33cn/rps/common/log"
)

var slog = log.New("module", "db.statedb")

//error
var (
	ErrTxConflict = errors.New("ErrTxConflict")
	ErrTxClosed   = errors.New("ErrTxClosed")
)

//DefaultMaxRetries 冲突重试次数
const DefaultMaxRetries = 8

//StateDB 在 DB 之上提供乐观并发的事务.
//事务读取时记录读集, 写入缓存在本地, Commit 时在提交锁内校验读集未被修改后一次性批量写入.
type StateDB struct {
	db         DB
	mu         sync.RWMutex
	maxRetries int
}

//NewStateDB new
func NewStateDB(db DB, maxRetries int) *StateDB {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &StateDB{db: db, maxRetries: maxRetries}
}

//Get 读取已提交的状态
func (s *StateDB) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Get(key)
}

//Iterator 已提交状态的迭代
func (s *StateDB) Iterator(prefix []byte, reverse bool) Iterator {
	return s.db.Iterator(prefix, reverse)
}

//Close close
func (s *StateDB) Close() {
	s.db.Close()
}

//Begin 开始一个事务
func (s *StateDB) Begin() *Tx {
	return &Tx{
		sdb:    s,
		reads:  make(map[string]readItem),
		writes: make(map[string][]byte),
	}
}

//Update 在事务中执行 fn 并提交, 读集冲突时整体重试 fn.
//fn 返回错误时事务回滚, 不会有任何写入
func (s *StateDB) Update(fn func(kv KV) error) error {
	for i := 0; i < s.maxRetries; i++ {
		tx := s.Begin()
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		err := tx.Commit()
		if err == ErrTxConflict {
			slog.Debug("Update retry", "times", i+1)
			continue
		}
		return err
	}
	slog.Error("Update", "error", ErrTxConflict, "retries", s.maxRetries)
	return ErrTxConflict
}

//View 只读事务, fn 中的写入全部丢弃
func (s *StateDB) View(fn func(kv KV) error) error {
	tx := s.Begin()
	defer tx.Rollback()
	return fn(tx)
}

type readItem struct {
	value []byte
	found bool
}

//Tx 事务
type Tx struct {
	sdb    *StateDB
	reads  map[string]readItem
	writes map[string][]byte
	keys   []string
	closed bool
}

//Get 先读本事务的写缓存, 再读已提交的状态
func (tx *Tx) Get(key []byte) ([]byte, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	if value, ok := tx.writes[string(key)]; ok {
		if value == nil {
			return nil, ErrNotFoundInDb
		}
		return CopyBytes(value), nil
	}
	if item, ok := tx.reads[string(key)]; ok {
		if !item.found {
			return nil, ErrNotFoundInDb
		}
		return CopyBytes(item.value), nil
	}
	value, err := tx.sdb.Get(key)
	if err != nil && err != ErrNotFoundInDb {
		return nil, err
	}
	item := readItem{value: CopyBytes(value), found: err == nil}
	tx.reads[string(key)] = item
	if !item.found {
		return nil, ErrNotFoundInDb
	}
	return CopyBytes(item.value), nil
}

//Set 写入缓存, value 为 nil 表示删除
func (tx *Tx) Set(key []byte, value []byte) error {
	if tx.closed {
		return ErrTxClosed
	}
	k := string(key)
	if _, ok := tx.writes[k]; !ok {
		tx.keys = append(tx.keys, k)
	}
	tx.writes[k] = CopyBytes(value)
	return nil
}

//Commit 校验读集并写入
func (tx *Tx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	if len(tx.keys) == 0 {
		return nil
	}
	s := tx.sdb
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, item := range tx.reads {
		value, err := s.db.Get([]byte(k))
		if err != nil && err != ErrNotFoundInDb {
			return err
		}
		found := err == nil
		if found != item.found || !bytes.Equal(value, item.value) {
			return ErrTxConflict
		}
	}
	batch := s.db.NewBatch(true)
	for _, k := range tx.keys {
		value := tx.writes[k]
		if value == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), value)
		}
	}
	return batch.Write()
}

//Rollback 丢弃写缓存
func (tx *Tx) Rollback() {
	tx.closed = true
	tx.reads = nil
	tx.writes = nil
	tx.keys = nil
}
