// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

// 列表查询的默认条数和最大条数
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

func (r *Rps) readChallenge(kv dbm.KV, id rt.ChallengeID) (*rt.ChallengeRecord, error) {
	value, err := kv.Get(Key(id))
	if err == dbm.ErrNotFoundInDb {
		return nil, rt.ErrChallengeNotFound
	}
	if err != nil {
		return nil, err
	}
	record, _, err := rt.DecodeChallenge(value)
	return record, err
}

//QueryChallengeByID 查询挑战
func (r *Rps) QueryChallengeByID(id rt.ChallengeID) (record *rt.ChallengeRecord, err error) {
	err = r.sdb.View(func(kv dbm.KV) error {
		record, err = r.readChallenge(kv, id)
		return err
	})
	return record, err
}

//QueryChallengesByIDs 批量查询, 不存在的跳过
func (r *Rps) QueryChallengesByIDs(ids []rt.ChallengeID) (*rt.ReplyChallengeList, error) {
	reply := &rt.ReplyChallengeList{}
	err := r.sdb.View(func(kv dbm.KV) error {
		for _, id := range ids {
			record, err := r.readChallenge(kv, id)
			if err == rt.ErrChallengeNotFound {
				continue
			}
			if err != nil {
				return err
			}
			reply.Challenges = append(reply.Challenges, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

//QueryChallengeListByStatusAndAddr addr 为空时按状态列出, From 为空时从头(或尾)开始
func (r *Rps) QueryChallengeListByStatusAndAddr(req *rt.ReqChallengeList) (*rt.ReplyChallengeList, error) {
	if err := rt.CheckStatus(req.Status); err != nil {
		return nil, err
	}
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}
	if count > MaxCount {
		count = MaxCount
	}
	var prefix, key []byte
	if req.Addr == "" {
		prefix = calcRpsStatusIndexPrefix(req.Status)
		if req.From != nil {
			key = calcRpsStatusIndexKey(req.Status, *req.From)
		}
	} else {
		prefix = calcRpsAddrIndexPrefix(req.Status, req.Addr)
		if req.From != nil {
			key = calcRpsAddrIndexKey(req.Status, req.Addr, *req.From)
		}
	}
	values := dbm.NewListHelper(r.sdb).List(prefix, key, count, req.Direction)
	reply := &rt.ReplyChallengeList{}
	for _, value := range values {
		record, _, err := rt.DecodeChallenge(value)
		if err != nil {
			elog.Error("QueryChallengeListByStatusAndAddr", "status", req.Status, "addr", req.Addr, "err", err)
			return nil, err
		}
		reply.Challenges = append(reply.Challenges, record)
	}
	return reply, nil
}

//QueryChallengeCount 某个状态(以及地址)的挑战数量
func (r *Rps) QueryChallengeCount(req *rt.ReqChallengeCount) (*rt.ReplyChallengeCount, error) {
	if err := rt.CheckStatus(req.Status); err != nil {
		return nil, err
	}
	prefix := calcRpsStatusIndexPrefix(req.Status)
	if req.Addr != "" {
		prefix = calcRpsAddrIndexPrefix(req.Status, req.Addr)
	}
	return &rt.ReplyChallengeCount{Count: dbm.NewListHelper(r.sdb).PrefixCount(prefix)}, nil
}

//QueryCommitment 查询出手承诺, 没有出手时返回 types.ErrNotFound
func (r *Rps) QueryCommitment(id rt.ChallengeID, addr string) (commitment rt.Commitment, err error) {
	err = r.sdb.View(func(kv dbm.KV) error {
		var ok bool
		commitment, ok, err = newCommitments(kv).get(id, addr)
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrNotFound
		}
		return nil
	})
	return commitment, err
}

//QueryBalance 执行器账户中的可用和冻结余额
func (r *Rps) QueryBalance(addr string) (acc *types.Account, err error) {
	err = r.sdb.View(func(kv dbm.KV) error {
		acc, err = r.newLedger(kv).LoadExecAccount(addr, r.execaddr)
		return err
	})
	return acc, err
}

//QueryNextID 下一个挑战的编号
func (r *Rps) QueryNextID() (id rt.ChallengeID, err error) {
	err = r.sdb.View(func(kv dbm.KV) error {
		id, err = newRegistry(kv).peekID()
		return err
	})
	return id, err
}
