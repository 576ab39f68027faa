// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/pkg/errors"
)

//commitments 每个 (挑战, 地址) 最多一个承诺, 写入后不再修改
type commitments struct {
	db dbm.KV
}

func newCommitments(db dbm.KV) *commitments {
	return &commitments{db: db}
}

func (c *commitments) get(id rt.ChallengeID, addr string) (rt.Commitment, bool, error) {
	value, err := c.db.Get(calcCommitmentKey(id, addr))
	if err == dbm.ErrNotFoundInDb {
		return rt.Commitment{}, false, nil
	}
	if err != nil {
		return rt.Commitment{}, false, err
	}
	commitment, ok := rt.CommitmentFromBytes(value)
	if !ok {
		return rt.Commitment{}, false, errors.Wrapf(rt.ErrInvalidState, "bad commitment %x", value)
	}
	return commitment, true, nil
}

func (c *commitments) has(id rt.ChallengeID, addr string) (bool, error) {
	_, ok, err := c.get(id, addr)
	return ok, err
}

//insert 已存在时按非参与者处理
func (c *commitments) insert(id rt.ChallengeID, addr string, commitment rt.Commitment) error {
	ok, err := c.has(id, addr)
	if err != nil {
		return err
	}
	if ok {
		return rt.ErrCannotPlayInNonParticipatingChallenge
	}
	return c.db.Set(calcCommitmentKey(id, addr), commitment[:])
}

func (c *commitments) bothCommitted(id rt.ChallengeID, a, b string) (bool, error) {
	ok, err := c.has(id, a)
	if err != nil || !ok {
		return false, err
	}
	return c.has(id, b)
}
