// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(reply *rt.ReplyChallengeList) (list []rt.ChallengeID) {
	for _, c := range reply.Challenges {
		list = append(list, c.ID)
	}
	return list
}

func count(t *testing.T, r *Rps, status int32, addr string) int64 {
	reply, err := r.QueryChallengeCount(&rt.ReqChallengeCount{Status: status, Addr: addr})
	require.NoError(t, err)
	return reply.Count
}

func TestQueryChallengeList(t *testing.T) {
	r := newTestRps(t, 0)
	deposit(t, r, alice, bob)
	for i := 0; i < 3; i++ {
		_, err := r.CreateChallenge(alice, testStake)
		require.NoError(t, err)
	}
	_, err := r.EnterChallenge(bob, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), count(t, r, rt.StatusOpen, ""))
	assert.Equal(t, int64(2), count(t, r, rt.StatusOpen, alice))
	assert.Equal(t, int64(0), count(t, r, rt.StatusOpen, bob))
	assert.Equal(t, int64(1), count(t, r, rt.StatusAccepted, ""))
	assert.Equal(t, int64(1), count(t, r, rt.StatusAccepted, alice))
	assert.Equal(t, int64(1), count(t, r, rt.StatusAccepted, bob))

	reply, err := r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusOpen, Addr: alice, Direction: dbm.ListASC})
	require.NoError(t, err)
	assert.Equal(t, []rt.ChallengeID{0, 2}, ids(reply))
	reply, err = r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusOpen, Direction: dbm.ListDESC})
	require.NoError(t, err)
	assert.Equal(t, []rt.ChallengeID{2, 0}, ids(reply))

	from := rt.ChallengeID(0)
	reply, err = r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusOpen, From: &from, Direction: dbm.ListASC})
	require.NoError(t, err)
	assert.Equal(t, []rt.ChallengeID{2}, ids(reply))
	reply, err = r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusOpen, Count: 1, Direction: dbm.ListASC})
	require.NoError(t, err)
	assert.Equal(t, []rt.ChallengeID{0}, ids(reply))

	reply, err = r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusAccepted, Addr: bob})
	require.NoError(t, err)
	require.Len(t, reply.Challenges, 1)
	assert.Equal(t, &rt.ChallengeRecord{ID: 1, Status: rt.StatusAccepted, Challenger: alice, Rival: bob, Stake: testStake}, reply.Challenges[0])

	_, err = r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: 4})
	assert.Equal(t, rt.ErrInvalidStatus, err)
	_, err = r.QueryChallengeCount(&rt.ReqChallengeCount{Status: 0})
	assert.Equal(t, rt.ErrInvalidStatus, err)

	byIDs, err := r.QueryChallengesByIDs([]rt.ChallengeID{0, 5, 1})
	require.NoError(t, err)
	assert.Equal(t, []rt.ChallengeID{0, 1}, ids(byIDs))
}

func TestQueryIndexAfterFinish(t *testing.T) {
	r := newTestRps(t, 0)
	deposit(t, r, alice, bob)
	id := accepted(t, r)
	_, err := r.CommitMove(alice, id, rt.Rock, 3)
	require.NoError(t, err)
	_, err = r.CommitMove(bob, id, rt.Scissors, 4)
	require.NoError(t, err)
	//出手不改变索引
	assert.Equal(t, int64(1), count(t, r, rt.StatusAccepted, ""))

	_, err = r.RevealAndSettle(bob, rt.Scissors, 4, rt.Rock, 3, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count(t, r, rt.StatusOpen, ""))
	assert.Equal(t, int64(0), count(t, r, rt.StatusAccepted, ""))
	assert.Equal(t, int64(0), count(t, r, rt.StatusAccepted, bob))
	assert.Equal(t, int64(1), count(t, r, rt.StatusFinished, ""))
	assert.Equal(t, int64(1), count(t, r, rt.StatusFinished, alice))
	assert.Equal(t, int64(1), count(t, r, rt.StatusFinished, bob))

	reply, err := r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusFinished, Addr: bob})
	require.NoError(t, err)
	require.Len(t, reply.Challenges, 1)
	assert.Equal(t, alice, reply.Challenges[0].Winner)
}

func TestQueryListCount(t *testing.T) {
	r := newTestRps(t, 0)
	for i := 0; i < int(MaxCount)+5; i++ {
		_, err := r.CreateChallenge(alice, testStake)
		require.NoError(t, err)
	}
	reply, err := r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusOpen})
	require.NoError(t, err)
	assert.Len(t, reply.Challenges, int(DefaultCount))
	assert.Equal(t, rt.ChallengeID(MaxCount+4), reply.Challenges[0].ID)
	reply, err = r.QueryChallengeListByStatusAndAddr(&rt.ReqChallengeList{Status: rt.StatusOpen, Count: 1000})
	require.NoError(t, err)
	assert.Len(t, reply.Challenges, int(MaxCount))
}
