// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
)

// LoadExecAccount Load exec account from address and exec
func (acc *DB) LoadExecAccount(addr, execaddr string) (*types.Account, error) {
	value, err := acc.db.Get(acc.execAccountKey(addr, execaddr))
	if err == dbm.ErrNotFoundInDb {
		return &types.Account{Addr: addr}, nil
	}
	if err != nil {
		return nil, err
	}
	var acc1 types.Account
	//数据库已经损坏
	types.MustDecode(value, &acc1)
	return &acc1, nil
}

// SaveExecAccount save exec account data to db
func (acc *DB) SaveExecAccount(execaddr string, acc1 *types.Account) error {
	set := acc.GetExecKVSet(execaddr, acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetExecKVSet 将执行账户数据转为数据库存储kv
func (acc *DB) GetExecKVSet(execaddr string, acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.execAccountKey(acc1.Addr, execaddr),
		Value: value,
	})
	return kvset
}

func (acc *DB) execAccountKey(address, execaddr string) (key []byte) {
	key = make([]byte, 0, len(acc.execAccountKeyPerfix)+len(execaddr)+len(address)+1)
	key = append(key, acc.execAccountKeyPerfix...)
	key = append(key, []byte(execaddr)...)
	key = append(key, []byte(":")...)
	key = append(key, []byte(address)...)
	return key
}

// ExecAddress 根据执行器名称获取执行器地址
func (acc *DB) ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// ExecDeposit  在当前addr的execaddr地址中存款
func (acc *DB) ExecDeposit(addr, execaddr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadExecAccount(addr, execaddr)
	if err != nil {
		return nil, err
	}
	if acc1.Balance+amount >= types.MaxCoin {
		return nil, types.ErrAmount
	}
	copyacc := *acc1
	acc1.Balance += amount
	return acc.saveExec(types.TyLogExecDeposit, execaddr, &copyacc, acc1)
}

// ExecWithdraw 执行撤回转帐
func (acc *DB) ExecWithdraw(execaddr, addr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadExecAccount(addr, execaddr)
	if err != nil {
		return nil, err
	}
	if acc1.Balance-amount < 0 {
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance -= amount
	return acc.saveExec(types.TyLogExecWithdraw, execaddr, &copyacc, acc1)
}

//ExecFrozen 执行冻结资金
func (acc *DB) ExecFrozen(addr, execaddr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadExecAccount(addr, execaddr)
	if err != nil {
		return nil, err
	}
	if acc1.Balance-amount < 0 {
		alog.Error("ExecFrozen", "balance", acc1.Balance, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance -= amount
	acc1.Frozen += amount
	return acc.saveExec(types.TyLogExecFrozen, execaddr, &copyacc, acc1)
}

// ExecActive 执行激活资金
func (acc *DB) ExecActive(addr, execaddr string, amount int64) (*types.Receipt, error) {
	if addr == execaddr {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadExecAccount(addr, execaddr)
	if err != nil {
		return nil, err
	}
	if acc1.Frozen-amount < 0 {
		alog.Error("ExecActive", "frozen", acc1.Frozen, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance += amount
	acc1.Frozen -= amount
	return acc.saveExec(types.TyLogExecActive, execaddr, &copyacc, acc1)
}

// ExecTransferFrozen 从自己冻结的钱里面扣除，转移到别人的冻结资金里面去, 途中不经过任何一方的可用余额
func (acc *DB) ExecTransferFrozen(from, to, execaddr string, amount int64) (*types.Receipt, error) {
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom, err := acc.LoadExecAccount(from, execaddr)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadExecAccount(to, execaddr)
	if err != nil {
		return nil, err
	}
	b := accFrom.GetFrozen() - amount
	if b < 0 {
		alog.Error("ExecTransferFrozen", "frozen", accFrom.Frozen, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyaccFrom := *accFrom
	copyaccTo := *accTo

	accFrom.Frozen -= amount
	accTo.Frozen += amount

	receipt, err := acc.saveExec(types.TyLogExecTransferFrozen, execaddr, &copyaccFrom, accFrom)
	if err != nil {
		return nil, err
	}
	receipt2, err := acc.saveExec(types.TyLogExecTransferFrozen, execaddr, &copyaccTo, accTo)
	if err != nil {
		return nil, err
	}
	return acc.mergeReceipt(receipt, receipt2), nil
}

func (acc *DB) saveExec(ty int32, execaddr string, prev, current *types.Account) (*types.Receipt, error) {
	if err := acc.SaveExecAccount(execaddr, current); err != nil {
		return nil, err
	}
	receiptBalance := &types.ReceiptExecAccountTransfer{
		ExecAddr: execaddr,
		Prev:     prev,
		Current:  current,
	}
	return acc.execReceipt(ty, current, receiptBalance), nil
}

func (acc *DB) execReceipt(ty int32, acc1 *types.Account, r *types.ReceiptExecAccountTransfer) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(r),
	}
	kv := acc.GetExecKVSet(r.ExecAddr, acc1)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1},
	}
}

func (acc *DB) mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	return receipt.Merge(receipt2)
}
