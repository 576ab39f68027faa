// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor rps
import (
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//挑战的状态变化：
// status == 1 (Open，创建挑战，等待对手)
// status == 2 (Accepted，对手加入，双方各自冻结押注并提交出手的承诺)
// status == 3 (Finished，任意一方公布双方的出手和密钥，结算押注)
//状态只能按 1 -> 2 -> 3 变化，不会回退也不会跳过。

// recordKV 记录事务中的写入, 作为回执的 KV
type recordKV struct {
	dbm.KV
	kvs []*types.KeyValue
}

func (db *recordKV) Set(key []byte, value []byte) error {
	if err := db.KV.Set(key, value); err != nil {
		return err
	}
	db.kvs = append(db.kvs, &types.KeyValue{Key: dbm.CopyBytes(key), Value: dbm.CopyBytes(value)})
	return nil
}

//Action 在一个事务中执行一次操作
type Action struct {
	db          *recordKV
	fromaddr    string
	execaddr    string
	cfg         *types.Rps
	ledger      Ledger
	escrow      *escrow
	registry    *registry
	commitments *commitments
	logs        []*types.ReceiptLog
}

//NewAction db 为当前事务
func NewAction(r *Rps, db dbm.KV, fromaddr string) *Action {
	rec := &recordKV{KV: db}
	ledger := r.newLedger(rec)
	return &Action{
		db:          rec,
		fromaddr:    fromaddr,
		execaddr:    r.execaddr,
		cfg:         r.cfg,
		ledger:      ledger,
		escrow:      &escrow{ledger: ledger, execaddr: r.execaddr},
		registry:    newRegistry(rec),
		commitments: newCommitments(rec),
	}
}

func (action *Action) emit(e rt.Event) {
	action.logs = append(action.logs, rt.EventLog(e))
}

func (action *Action) appendLogs(receipt *types.Receipt) {
	if receipt != nil {
		action.logs = append(action.logs, receipt.Logs...)
	}
}

func (action *Action) receipt() *types.Receipt {
	return &types.Receipt{Ty: types.ExecOk, KV: action.db.kvs, Logs: action.logs}
}

//CreateChallenge 创建挑战, 创建时不冻结押注
func (action *Action) CreateChallenge(stake int64) (*types.Receipt, error) {
	if stake < action.cfg.MinimumStake {
		return nil, rt.ErrInsufficientStake
	}
	if stake > action.cfg.MaximumStake {
		return nil, types.ErrAmount
	}
	id, err := action.registry.nextID()
	if err != nil {
		return nil, err
	}
	state := &rt.Open{Challenger: action.fromaddr, Stake: stake}
	if err := action.registry.put(id, state); err != nil {
		return nil, err
	}
	if err := updateIndex(action.db, id, nil, state); err != nil {
		return nil, err
	}
	action.emit(&rt.ChallengeCreated{ID: id, Challenger: action.fromaddr, Stake: stake})
	elog.Info("CreateChallenge", "id", id, "addr", action.fromaddr, "stake", stake)
	return action.receipt(), nil
}

//EnterChallenge 加入挑战
func (action *Action) EnterChallenge(id rt.ChallengeID) (*types.Receipt, error) {
	prev, next, err := action.registry.tryMutate(id, func(cur rt.ChallengeState) (rt.ChallengeState, error) {
		if cur == nil {
			return nil, rt.ErrChallengeNotFound
		}
		open, ok := cur.(*rt.Open)
		if !ok {
			return nil, rt.ErrChallengeNotOpen
		}
		if open.Challenger == action.fromaddr {
			return nil, rt.ErrCannotChallengeOneself
		}
		return open.Accept(action.fromaddr), nil
	})
	if err != nil {
		return nil, err
	}
	if err := updateIndex(action.db, id, prev, next); err != nil {
		return nil, err
	}
	action.emit(&rt.EnteredChallenge{ID: id, Rival: action.fromaddr})
	elog.Info("EnterChallenge", "id", id, "addr", action.fromaddr)
	return action.receipt(), nil
}

//CommitMove 冻结押注并保存出手的承诺, 双方都提交后可以开奖
func (action *Action) CommitMove(id rt.ChallengeID, move rt.Move, secret uint64) (*types.Receipt, error) {
	if !move.Valid() {
		return nil, rt.ErrInvalidMove
	}
	var ready bool
	_, _, err := action.registry.tryMutate(id, func(cur rt.ChallengeState) (rt.ChallengeState, error) {
		if cur == nil {
			return nil, rt.ErrChallengeNotFound
		}
		accepted, ok := cur.(*rt.Accepted)
		if !ok {
			return nil, rt.ErrChallengeStateForbidsPlay
		}
		if !accepted.Contains(action.fromaddr) {
			return nil, rt.ErrCannotPlayInNonParticipatingChallenge
		}
		//已经出过手和非参与者报同一个错误
		played, err := action.commitments.has(id, action.fromaddr)
		if err != nil {
			return nil, err
		}
		if played {
			return nil, rt.ErrCannotPlayInNonParticipatingChallenge
		}
		receipt, err := action.escrow.lock(action.fromaddr, accepted.Stake)
		if err != nil {
			return nil, err
		}
		action.appendLogs(receipt)
		if err := action.commitments.insert(id, action.fromaddr, rt.CommitmentOf(move, secret)); err != nil {
			return nil, err
		}
		rival, _ := accepted.Counterparty(action.fromaddr)
		ready, err = action.commitments.bothCommitted(id, action.fromaddr, rival)
		if err != nil {
			return nil, err
		}
		return accepted, nil
	})
	if err != nil {
		return nil, err
	}
	action.emit(&rt.PlayedInChallenge{ID: id, Player: action.fromaddr})
	if ready {
		action.emit(&rt.ChallengeReadyForReveal{ID: id})
	}
	elog.Info("CommitMove", "id", id, "addr", action.fromaddr, "ready", ready)
	return action.receipt(), nil
}

//RevealAndSettle 调用者公布自己(move, secret)和对手(rivalMove, rivalSecret)的出手, 校验承诺后结算
func (action *Action) RevealAndSettle(id rt.ChallengeID, move rt.Move, secret uint64, rivalMove rt.Move, rivalSecret uint64) (*types.Receipt, error) {
	if !move.Valid() || !rivalMove.Valid() {
		return nil, rt.ErrInvalidMove
	}
	var winner string
	prev, next, err := action.registry.tryMutate(id, func(cur rt.ChallengeState) (rt.ChallengeState, error) {
		if cur == nil {
			return nil, rt.ErrChallengeNotFound
		}
		accepted, ok := cur.(*rt.Accepted)
		if !ok {
			return nil, rt.ErrChallengeStateForbidsPlay
		}
		rival, ok := accepted.Counterparty(action.fromaddr)
		if !ok {
			return nil, rt.ErrCannotRevealNonParticipatingChallenge
		}
		if err := action.verify(id, action.fromaddr, move, secret); err != nil {
			return nil, err
		}
		if err := action.verify(id, rival, rivalMove, rivalSecret); err != nil {
			return nil, err
		}
		var loser string
		switch rt.Resolve(move, rivalMove) {
		case rt.AWins:
			winner, loser = action.fromaddr, rival
		case rt.BWins:
			winner, loser = rival, action.fromaddr
		}
		receipt, err := action.escrow.settle(accepted, winner, loser)
		if err != nil {
			return nil, err
		}
		action.appendLogs(receipt)
		return accepted.Finish(winner), nil
	})
	if err != nil {
		return nil, err
	}
	if err := updateIndex(action.db, id, prev, next); err != nil {
		return nil, err
	}
	action.emit(&rt.ChallengeFinished{ID: id, Winner: winner})
	elog.Info("RevealAndSettle", "id", id, "addr", action.fromaddr, "winner", winner)
	return action.receipt(), nil
}

// verify 承诺不存在说明对方还没有出手
func (action *Action) verify(id rt.ChallengeID, addr string, move rt.Move, secret uint64) error {
	commitment, ok, err := action.commitments.get(id, addr)
	if err != nil {
		return err
	}
	if !ok {
		return rt.ErrChallengeStateForbidsResolution
	}
	if !rt.Verify(move, secret, commitment) {
		return rt.ErrInvalidHandHash
	}
	return nil
}

//Deposit 向执行器账户充值
func (action *Action) Deposit(amount int64) (*types.Receipt, error) {
	receipt, err := action.ledger.ExecDeposit(action.fromaddr, action.execaddr, amount)
	if err != nil {
		return nil, err
	}
	action.appendLogs(receipt)
	return action.receipt(), nil
}

//Withdraw 从执行器账户取出可用余额
func (action *Action) Withdraw(amount int64) (*types.Receipt, error) {
	receipt, err := action.ledger.ExecWithdraw(action.execaddr, action.fromaddr, amount)
	if err != nil {
		return nil, err
	}
	action.appendLogs(receipt)
	return action.receipt(), nil
}
