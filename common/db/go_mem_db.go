// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"github.com/33cn/rps/common/log"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB db
type GoMemDB struct {
	db *memdb.DB
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件
	if cache <= 0 {
		cache = 1
	}
	return &GoMemDB{
		db: memdb.New(comparer.DefaultComparer, cache*1024*1024),
	}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return CopyBytes(v), nil
}

//Set set, value 为 nil 时删除
func (db *GoMemDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	if err := db.db.Put(key, value); err != nil {
		mlog.Error("Set", "error", err)
		return err
	}
	return nil
}

//Delete delete
func (db *GoMemDB) Delete(key []byte) error {
	err := db.db.Delete(key)
	if err != nil && err != memdb.ErrNotFound {
		mlog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//Close memdb 无需关闭
func (db *GoMemDB) Close() {
}

//Iterator 迭代器
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	it := db.db.NewIterator(&util.Range{Start: prefix, Limit: bytesPrefixEnd(prefix)})
	return &goLevelDBIt{Iterator: it, itBase: itBase{prefix: prefix, reverse: reverse}}
}

//NewBatch batch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memOp struct {
	key   []byte
	value []byte
	del   bool
}

type memBatch struct {
	db    *GoMemDB
	ops   []memOp
	size  int
	write bool
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, memOp{key: CopyBytes(key), value: CopyBytes(value)})
	b.size += len(key) + len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{key: CopyBytes(key), del: true})
	b.size += len(key)
}

func (b *memBatch) Write() error {
	for _, op := range b.ops {
		var err error
		if op.del || op.value == nil {
			err = b.db.Delete(op.key)
		} else {
			err = b.db.db.Put(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.ops = b.ops[:0]
	b.size = 0
}
