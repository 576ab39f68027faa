// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

//Ledger 托管押注的账户操作
type Ledger interface {
	LoadExecAccount(addr, execaddr string) (*types.Account, error)
	ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error)
	ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error)
	ExecFrozen(addr, execaddr string, amount int64) (*types.Receipt, error)
	ExecActive(addr, execaddr string, amount int64) (*types.Receipt, error)
	ExecTransferFrozen(from, to, execaddr string, amount int64) (*types.Receipt, error)
}

//LedgerCreator 在当前事务上创建 Ledger
type LedgerCreator func(db dbm.KV) Ledger

//NewCoinsLedger 默认使用主币的执行器账户
func NewCoinsLedger(db dbm.KV) Ledger {
	return account.NewCoinsAccount().SetDB(db)
}

//escrow 押注的冻结与结算
type escrow struct {
	ledger   Ledger
	execaddr string
}

// lock 冻结押注
func (e *escrow) lock(addr string, amount int64) (*types.Receipt, error) {
	receipt, err := e.ledger.ExecFrozen(addr, e.execaddr, amount)
	if err != nil {
		return nil, errors.Wrapf(rt.ErrInvalidState, "lock %d of %s: %v", amount, addr, err)
	}
	return receipt, nil
}

// transferLocked 冻结资金之间的划转, 不经过可用余额
func (e *escrow) transferLocked(from, to string, amount int64) (*types.Receipt, error) {
	receipt, err := e.ledger.ExecTransferFrozen(from, to, e.execaddr, amount)
	if err != nil {
		return nil, errors.Wrapf(rt.ErrInvalidState, "transfer locked %d from %s to %s: %v", amount, from, to, err)
	}
	return receipt, nil
}

// release 解冻
func (e *escrow) release(addr string, amount int64) (*types.Receipt, error) {
	receipt, err := e.ledger.ExecActive(addr, e.execaddr, amount)
	if err != nil {
		return nil, errors.Wrapf(rt.ErrInvalidState, "release %d of %s: %v", amount, addr, err)
	}
	return receipt, nil
}

//settle 赢家得到输家冻结的押注后一起解冻; 平局各自解冻.
//任何一步失败整个事务回滚, 不会留下部分结算
func (e *escrow) settle(c *rt.Accepted, winner, loser string) (*types.Receipt, error) {
	if winner == "" {
		receipt, err := e.release(c.Challenger, c.Stake)
		if err != nil {
			return nil, err
		}
		receipt2, err := e.release(c.Rival, c.Stake)
		if err != nil {
			return nil, err
		}
		return receipt.Merge(receipt2), nil
	}
	receipt, err := e.transferLocked(loser, winner, c.Stake)
	if err != nil {
		return nil, err
	}
	receipt2, err := e.release(winner, 2*c.Stake)
	if err != nil {
		return nil, err
	}
	return receipt.Merge(receipt2), nil
}
