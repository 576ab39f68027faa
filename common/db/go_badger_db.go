// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"github.com/33cn/rps/common/log"
	"github.com/dgraph-io/badger"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(dir)
	opts.ValueDir = dir
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set, value 为 nil 时删除
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//Close close
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Iterator 迭代器, Close 时释放只读事务
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it: it, txn: txn, itBase: itBase{prefix: prefix, reverse: reverse}}
}

//NewBatch batch
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBIt struct {
	itBase
	it  *badger.Iterator
	txn *badger.Txn
	err error
}

func (it *goBadgerDBIt) Rewind() bool {
	if it.reverse {
		end := bytesPrefixEnd(it.prefix)
		if end == nil {
			it.it.Rewind()
		} else {
			it.it.Seek(end)
			if it.it.Valid() && string(it.it.Item().Key()) == string(end) {
				it.it.Next()
			}
		}
		return it.Valid()
	}
	it.it.Seek(it.prefix)
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.it.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.it.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	return it.it.ValidForPrefix(it.prefix)
}

func (it *goBadgerDBIt) Key() []byte {
	return it.it.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	value, err := it.it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.it.Close()
	it.txn.Discard()
}

type badgerOp struct {
	key   []byte
	value []byte
}

// badger 的写事务在 Write 时一次提交
type goBadgerDBBatch struct {
	db   *GoBadgerDB
	ops  []badgerOp
	size int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.ops = append(mBatch.ops, badgerOp{key: CopyBytes(key), value: CopyBytes(value)})
	mBatch.size += len(key) + len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.ops = append(mBatch.ops, badgerOp{key: CopyBytes(key)})
	mBatch.size += len(key)
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, op := range mBatch.ops {
			var err error
			if op.value == nil {
				err = txn.Delete(op.key)
			} else {
				err = txn.Set(op.key, op.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
	}
	return err
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.ops = mBatch.ops[:0]
	mBatch.size = 0
}
