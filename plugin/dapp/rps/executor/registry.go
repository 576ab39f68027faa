// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/pkg/errors"
)

//registry 挑战的分配与存储, 所有读写都在当前事务中
type registry struct {
	db dbm.KV
}

func newRegistry(db dbm.KV) *registry {
	return &registry{db: db}
}

func (r *registry) peekID() (rt.ChallengeID, error) {
	value, err := r.db.Get(calcNextIDKey())
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(value) != 8 {
		return 0, errors.Wrapf(rt.ErrInvalidState, "bad next id %x", value)
	}
	return rt.ChallengeID(binary.BigEndian.Uint64(value)), nil
}

//nextID 返回当前编号并加一, 只在创建成功的事务中调用
func (r *registry) nextID() (rt.ChallengeID, error) {
	id, err := r.peekID()
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id)+1)
	if err := r.db.Set(calcNextIDKey(), buf[:]); err != nil {
		return 0, err
	}
	return id, nil
}

//get 不存在时 state 为 nil
func (r *registry) get(id rt.ChallengeID) (rt.ChallengeState, error) {
	value, err := r.db.Get(Key(id))
	if err == dbm.ErrNotFoundInDb {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	_, state, err := rt.DecodeChallenge(value)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (r *registry) put(id rt.ChallengeID, state rt.ChallengeState) error {
	return r.db.Set(Key(id), rt.EncodeChallenge(id, state))
}

//tryMutate 读取当前状态交给 fn, fn 成功时写入新状态, 失败时不做任何修改
func (r *registry) tryMutate(id rt.ChallengeID, fn func(cur rt.ChallengeState) (rt.ChallengeState, error)) (prev, next rt.ChallengeState, err error) {
	prev, err = r.get(id)
	if err != nil {
		return nil, nil, err
	}
	next, err = fn(prev)
	if err != nil {
		return nil, nil, err
	}
	if err := r.put(id, next); err != nil {
		return nil, nil, err
	}
	return prev, next, nil
}
