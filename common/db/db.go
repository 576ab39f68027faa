// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 提供 key-value 存储后端以及带乐观并发控制的状态数据库
package db

import (
	"bytes"
	"errors"
	"fmt"
)

//ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 读写接口, 状态事务以及直接访问后端都满足这个接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB 存储后端
type DB interface {
	KV
	IteratorDB
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch 批量写, Write 时原子提交
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 前缀迭代器
type Iterator interface {
	Rewind() bool
	Seek(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按 backend 创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	return creator(name, dir, int(cache))
}

//CopyBytes copy
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

// prefix 上界, 空前缀表示没有上界
func bytesPrefixEnd(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

type itBase struct {
	prefix  []byte
	reverse bool
}

func (it *itBase) checkKey(key []byte) bool {
	return bytes.HasPrefix(key, it.prefix)
}
