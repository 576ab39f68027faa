// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallengeStake(t *testing.T) {
	r := newTestRps(t, 0)
	_, err := r.CreateChallenge(alice, 99)
	assert.Equal(t, rt.ErrInsufficientStake, err)
	_, err = r.CreateChallenge(alice, 0)
	assert.Equal(t, rt.ErrInsufficientStake, err)
	_, err = r.CreateChallenge(alice, types.MaxStake+1)
	assert.Equal(t, types.ErrAmount, err)
	//失败不占用编号
	id, err := r.QueryNextID()
	require.NoError(t, err)
	assert.Equal(t, rt.ChallengeID(0), id)
	_, err = r.QueryChallengeByID(0)
	assert.Equal(t, rt.ErrChallengeNotFound, err)

	for i := 0; i < 3; i++ {
		receipt, err := r.CreateChallenge(alice, 100)
		require.NoError(t, err)
		assert.Equal(t, rt.ChallengeID(i), events(t, receipt)[0].(*rt.ChallengeCreated).ID)
	}
	id, err = r.QueryNextID()
	require.NoError(t, err)
	assert.Equal(t, rt.ChallengeID(3), id)
}

func TestEnterChallenge(t *testing.T) {
	r := newTestRps(t, 0)
	_, err := r.EnterChallenge(bob, 0)
	assert.Equal(t, rt.ErrChallengeNotFound, err)

	_, err = r.CreateChallenge(alice, testStake)
	require.NoError(t, err)
	_, err = r.EnterChallenge(alice, 0)
	assert.Equal(t, rt.ErrCannotChallengeOneself, err)
	assertStatus(t, r, 0, rt.StatusOpen)

	_, err = r.EnterChallenge(bob, 0)
	require.NoError(t, err)
	_, err = r.EnterChallenge(carol, 0)
	assert.Equal(t, rt.ErrChallengeNotOpen, err)
	_, err = r.EnterChallenge(bob, 0)
	assert.Equal(t, rt.ErrChallengeNotOpen, err)
	record := assertStatus(t, r, 0, rt.StatusAccepted)
	assert.Equal(t, bob, record.Rival)
}

func TestCommitMoveErrors(t *testing.T) {
	r := newTestRps(t, 0)
	deposit(t, r, alice, bob, carol)

	_, err := r.CommitMove(alice, 0, rt.Rock, 1)
	assert.Equal(t, rt.ErrChallengeNotFound, err)

	_, err = r.CreateChallenge(alice, testStake)
	require.NoError(t, err)
	_, err = r.CommitMove(alice, 0, rt.Rock, 1)
	assert.Equal(t, rt.ErrChallengeStateForbidsPlay, err)

	_, err = r.EnterChallenge(bob, 0)
	require.NoError(t, err)
	_, err = r.CommitMove(carol, 0, rt.Rock, 1)
	assert.Equal(t, rt.ErrCannotPlayInNonParticipatingChallenge, err)
	_, err = r.CommitMove(alice, 0, rt.Move(0), 1)
	assert.Equal(t, rt.ErrInvalidMove, err)
	_, err = r.CommitMove(alice, 0, rt.Move(4), 1)
	assert.Equal(t, rt.ErrInvalidMove, err)
	assertBalance(t, r, alice, testDeposit, 0)

	_, err = r.CommitMove(alice, 0, rt.Rock, 1)
	require.NoError(t, err)
	//重复出手与非参与者同样处理, 不再冻结
	_, err = r.CommitMove(alice, 0, rt.Paper, 2)
	assert.Equal(t, rt.ErrCannotPlayInNonParticipatingChallenge, err)
	assertBalance(t, r, alice, testDeposit-testStake, testStake)
	commitment, err := r.QueryCommitment(0, alice)
	require.NoError(t, err)
	assert.Equal(t, rt.CommitmentOf(rt.Rock, 1), commitment)

	//结束后不能再出手
	_, err = r.CommitMove(bob, 0, rt.Rock, 0)
	require.NoError(t, err)
	_, err = r.RevealAndSettle(bob, rt.Rock, 0, rt.Rock, 1, 0)
	require.NoError(t, err)
	_, err = r.CommitMove(carol, 0, rt.Rock, 1)
	assert.Equal(t, rt.ErrChallengeStateForbidsPlay, err)
}

func TestCommitMoveNoBalance(t *testing.T) {
	r := newTestRps(t, 0)
	deposit(t, r, alice)
	_, err := r.CreateChallenge(alice, testStake)
	require.NoError(t, err)
	_, err = r.EnterChallenge(dave, 0)
	require.NoError(t, err)

	_, err = r.CommitMove(dave, 0, rt.Rock, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rt.ErrInvalidState))
	assert.Contains(t, err.Error(), types.ErrNoBalance.Error())
	_, err = r.QueryCommitment(0, dave)
	assert.Equal(t, types.ErrNotFound, err)
	assertBalance(t, r, dave, 0, 0)

	//充值后可以出手
	deposit(t, r, dave)
	_, err = r.CommitMove(dave, 0, rt.Rock, 1)
	assert.NoError(t, err)
}

func TestRevealErrors(t *testing.T) {
	r := newTestRps(t, 0)
	deposit(t, r, alice, bob)

	_, err := r.RevealAndSettle(alice, rt.Rock, 1, rt.Rock, 1, 0)
	assert.Equal(t, rt.ErrChallengeNotFound, err)

	_, err = r.CreateChallenge(alice, testStake)
	require.NoError(t, err)
	_, err = r.RevealAndSettle(alice, rt.Rock, 1, rt.Rock, 1, 0)
	assert.Equal(t, rt.ErrChallengeStateForbidsPlay, err)

	_, err = r.EnterChallenge(bob, 0)
	require.NoError(t, err)
	_, err = r.RevealAndSettle(carol, rt.Rock, 1, rt.Rock, 1, 0)
	assert.Equal(t, rt.ErrCannotRevealNonParticipatingChallenge, err)
	_, err = r.RevealAndSettle(alice, rt.Rock, 1, rt.Rock, 1, 0)
	assert.Equal(t, rt.ErrChallengeStateForbidsResolution, err)

	_, err = r.CommitMove(alice, 0, rt.Scissors, 57832)
	require.NoError(t, err)
	//对手还没有出手
	_, err = r.RevealAndSettle(alice, rt.Scissors, 57832, rt.Rock, 481, 0)
	assert.Equal(t, rt.ErrChallengeStateForbidsResolution, err)
	//自己还没有出手
	_, err = r.RevealAndSettle(bob, rt.Rock, 481, rt.Scissors, 57832, 0)
	assert.Equal(t, rt.ErrChallengeStateForbidsResolution, err)

	_, err = r.CommitMove(bob, 0, rt.Rock, 481)
	require.NoError(t, err)
	_, err = r.RevealAndSettle(alice, rt.Scissors, 57831, rt.Rock, 481, 0)
	assert.Equal(t, rt.ErrInvalidHandHash, err)
	_, err = r.RevealAndSettle(alice, rt.Paper, 57832, rt.Rock, 481, 0)
	assert.Equal(t, rt.ErrInvalidHandHash, err)
	//伪造对手的出手
	_, err = r.RevealAndSettle(alice, rt.Scissors, 57832, rt.Paper, 481, 0)
	assert.Equal(t, rt.ErrInvalidHandHash, err)
	_, err = r.RevealAndSettle(alice, rt.Scissors, 57832, rt.Move(7), 481, 0)
	assert.Equal(t, rt.ErrInvalidMove, err)

	assertStatus(t, r, 0, rt.StatusAccepted)
	assertBalance(t, r, alice, testDeposit-testStake, testStake)
	assertBalance(t, r, bob, testDeposit-testStake, testStake)

	_, err = r.RevealAndSettle(bob, rt.Rock, 481, rt.Scissors, 57832, 0)
	require.NoError(t, err)
	_, err = r.RevealAndSettle(bob, rt.Rock, 481, rt.Scissors, 57832, 0)
	assert.Equal(t, rt.ErrChallengeStateForbidsPlay, err)
}

func TestWithdraw(t *testing.T) {
	r := newTestRps(t, 0)
	deposit(t, r, alice)
	_, err := r.CreateChallenge(alice, testStake)
	require.NoError(t, err)
	_, err = r.EnterChallenge(bob, 0)
	require.NoError(t, err)
	_, err = r.CommitMove(alice, 0, rt.Rock, 1)
	require.NoError(t, err)

	//冻结的押注不能取出
	_, err = r.Withdraw(alice, testDeposit)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = r.Withdraw(alice, testDeposit-testStake)
	require.NoError(t, err)
	assertBalance(t, r, alice, 0, testStake)
	_, err = r.Deposit(alice, 0)
	assert.Equal(t, types.ErrAmount, err)
}
