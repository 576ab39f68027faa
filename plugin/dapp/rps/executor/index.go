// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//参与者, Open 状态只有创建者
func participants(state rt.ChallengeState) []string {
	switch s := state.(type) {
	case *rt.Accepted:
		return []string{s.Challenger, s.Rival}
	case *rt.Finished:
		return []string{s.Challenger, s.Rival}
	}
	return []string{state.GetChallenger()}
}

//updateIndex 删除老状态的索引, 建立新状态的索引; 状态不变时不做修改
func updateIndex(db dbm.KV, id rt.ChallengeID, prev, next rt.ChallengeState) error {
	if prev != nil && prev.Status() == next.Status() {
		return nil
	}
	var kvs []*types.KeyValue
	if prev != nil {
		kvs = append(kvs, &types.KeyValue{Key: calcRpsStatusIndexKey(prev.Status(), id)})
		for _, addr := range participants(prev) {
			kvs = append(kvs, &types.KeyValue{Key: calcRpsAddrIndexKey(prev.Status(), addr, id)})
		}
	}
	value := rt.EncodeChallenge(id, next)
	kvs = append(kvs, &types.KeyValue{Key: calcRpsStatusIndexKey(next.Status(), id), Value: value})
	for _, addr := range participants(next) {
		kvs = append(kvs, &types.KeyValue{Key: calcRpsAddrIndexKey(next.Status(), addr, id), Value: value})
	}
	for _, kv := range kvs {
		if err := db.Set(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}
