// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateDB(t *testing.T, retries int) *StateDB {
	db, err := NewGoMemDB("state", "", 1)
	require.NoError(t, err)
	return NewStateDB(db, retries)
}

func TestTxReadYourWrites(t *testing.T) {
	s := newTestStateDB(t, 0)
	tx := s.Begin()
	_, err := tx.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, tx.Set([]byte("k"), []byte("v")))
	v, err := tx.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	// 未提交前不可见
	_, err = s.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, tx.Commit())
	v, err = s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	assert.Equal(t, ErrTxClosed, tx.Commit())
	assert.Equal(t, ErrTxClosed, tx.Set([]byte("k"), nil))
}

func TestTxDelete(t *testing.T) {
	s := newTestStateDB(t, 0)
	require.NoError(t, s.Update(func(kv KV) error {
		return kv.Set([]byte("k"), []byte("v"))
	}))
	require.NoError(t, s.Update(func(kv KV) error {
		return kv.Set([]byte("k"), nil)
	}))
	_, err := s.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestTxConflict(t *testing.T) {
	s := newTestStateDB(t, 0)
	tx1 := s.Begin()
	tx2 := s.Begin()
	_, err := tx1.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)
	_, err = tx2.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, tx1.Set([]byte("k"), []byte("1")))
	require.NoError(t, tx2.Set([]byte("k"), []byte("2")))
	require.NoError(t, tx1.Commit())
	assert.Equal(t, ErrTxConflict, tx2.Commit())

	v, err := s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}

func TestUpdateRollbackOnError(t *testing.T) {
	s := newTestStateDB(t, 0)
	fail := errors.New("fail")
	err := s.Update(func(kv KV) error {
		require.NoError(t, kv.Set([]byte("a"), []byte("1")))
		return fail
	})
	assert.Equal(t, fail, err)
	_, err = s.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestUpdateGivesUp(t *testing.T) {
	s := newTestStateDB(t, 2)
	calls := 0
	err := s.Update(func(kv KV) error {
		calls++
		if _, err := kv.Get([]byte("k")); err != nil && err != ErrNotFoundInDb {
			return err
		}
		// 其他写者在读之后修改了 k
		require.NoError(t, s.db.Set([]byte("k"), []byte{byte(calls)}))
		return kv.Set([]byte("k"), []byte("mine"))
	})
	assert.Equal(t, ErrTxConflict, err)
	assert.Equal(t, 2, calls)
}

func TestConcurrentIncrement(t *testing.T) {
	s := newTestStateDB(t, 1000)
	key := []byte("counter")
	incr := func(kv KV) error {
		var n uint64
		v, err := kv.Get(key)
		if err == nil {
			n = binary.BigEndian.Uint64(v)
		} else if err != ErrNotFoundInDb {
			return err
		}
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, n+1)
		return kv.Set(key, buf)
	}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				assert.NoError(t, s.Update(incr))
			}
		}()
	}
	wg.Wait()
	v, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), binary.BigEndian.Uint64(v))
}

func TestView(t *testing.T) {
	s := newTestStateDB(t, 0)
	require.NoError(t, s.Update(func(kv KV) error {
		return kv.Set([]byte("k"), []byte("v"))
	}))
	err := s.View(func(kv KV) error {
		v, err := kv.Get([]byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), v)
		return kv.Set([]byte("k"), []byte("discarded"))
	})
	require.NoError(t, err)
	v, err := s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}
