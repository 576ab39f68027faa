// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeLifecycle(t *testing.T) {
	open := &Open{Challenger: "alice", Stake: 1000}
	accepted := open.Accept("bob")
	assert.Equal(t, &Accepted{Challenger: "alice", Rival: "bob", Stake: 1000}, accepted)
	assert.True(t, accepted.Contains("alice"))
	assert.True(t, accepted.Contains("bob"))
	assert.False(t, accepted.Contains("carol"))

	rival, ok := accepted.Counterparty("alice")
	assert.True(t, ok)
	assert.Equal(t, "bob", rival)
	rival, ok = accepted.Counterparty("bob")
	assert.True(t, ok)
	assert.Equal(t, "alice", rival)
	_, ok = accepted.Counterparty("carol")
	assert.False(t, ok)

	finished := accepted.Finish("bob")
	assert.False(t, finished.IsDraw())
	assert.True(t, accepted.Finish("").IsDraw())
}

func TestEncodeDecodeChallenge(t *testing.T) {
	states := []ChallengeState{
		&Open{Challenger: "alice", Stake: 1000},
		&Accepted{Challenger: "alice", Rival: "bob", Stake: 1000},
		&Finished{Challenger: "alice", Rival: "bob", Stake: 1000, Winner: "bob"},
		&Finished{Challenger: "alice", Rival: "bob", Stake: 1000},
	}
	for _, s := range states {
		data := EncodeChallenge(7, s)
		r, got, err := DecodeChallenge(data)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, ChallengeID(7), r.ID)
		assert.Equal(t, s.Status(), r.Status)
	}
}

func TestDecodeBadChallenge(t *testing.T) {
	bad := []*ChallengeRecord{
		{Status: StatusOpen, Stake: 1},
		{Status: StatusOpen, Challenger: "alice", Stake: 0},
		{Status: StatusOpen, Challenger: "alice", Rival: "bob", Stake: 1},
		{Status: StatusAccepted, Challenger: "alice", Stake: 1},
		{Status: StatusAccepted, Challenger: "alice", Rival: "alice", Stake: 1},
		{Status: StatusAccepted, Challenger: "alice", Rival: "bob", Stake: 1, Winner: "bob"},
		{Status: StatusFinished, Challenger: "alice", Rival: "bob", Stake: 1, Winner: "carol"},
		{Status: 9, Challenger: "alice", Rival: "bob", Stake: 1},
	}
	for _, r := range bad {
		_, _, err := DecodeChallenge(types.Encode(r))
		assert.True(t, errors.Is(err, ErrInvalidState), "%v", r)
	}
	_, _, err := DecodeChallenge([]byte{0xff})
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestEvents(t *testing.T) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.Logs = append(receipt.Logs,
		EventLog(&PlayedInChallenge{ID: 0, Player: "bob"}),
		&types.ReceiptLog{Ty: types.TyLogExecFrozen, Log: []byte("ignored")},
		EventLog(&ChallengeReadyForReveal{ID: 0}),
		EventLog(&ChallengeFinished{ID: 0}),
	)
	events, err := EventsOf(receipt)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, &PlayedInChallenge{ID: 0, Player: "bob"}, events[0])
	assert.Equal(t, &ChallengeReadyForReveal{ID: 0}, events[1])
	assert.Equal(t, &ChallengeFinished{ID: 0}, events[2])

	assert.True(t, IsEventLog(TyLogChallengeCreated))
	assert.False(t, IsEventLog(types.TyLogExecFrozen))

	_, err = DecodeEvent(&types.ReceiptLog{Ty: TyLogChallengeCreated, Log: []byte{0xff}})
	assert.Error(t, err)
}

func TestCheckStatus(t *testing.T) {
	for _, s := range []int32{StatusOpen, StatusAccepted, StatusFinished} {
		assert.NoError(t, CheckStatus(s))
	}
	assert.Equal(t, ErrInvalidStatus, CheckStatus(0))
	assert.Equal(t, ErrInvalidStatus, CheckStatus(4))
	assert.Equal(t, "Accepted", StatusName(StatusAccepted))
	assert.Equal(t, "Unknown", StatusName(4))
}
