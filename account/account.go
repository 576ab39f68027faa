// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现执行器账户的资产操作

每个地址在每个执行器下有一个执行器账户, Balance 为可用余额, Frozen 为冻结余额.
执行器通过冻结, 激活, 冻结资金划转三个操作完成押金的托管与结算.
*/
package account

import (
	"strings"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

//NewCoinsAccount 主币账户
func NewCoinsAccount() *DB {
	prefix := "mavl-coins-bty-"
	return newAccountDB(prefix)
}

//NewAccountDB 按 execer 和 symbol 创建资产账户
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	accDB := newAccountDB(SymbolPrefix(execer, symbol))
	accDB.execer = execer
	accDB.symbol = symbol
	accDB.SetDB(db)
	return accDB, nil
}

func newAccountDB(prefix string) *DB {
	acc := &DB{}
	acc.accountKeyPerfix = []byte(prefix)
	acc.execAccountKeyPerfix = append([]byte(prefix), []byte("exec-")...)
	return acc
}

//SetDB 设置读写的 kv, 一般是当前事务
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//SymbolPrefix key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return "mavl-" + execer + "-" + symbol + "-"
}
