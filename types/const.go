// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
	// CoinPrecision 金额小数位数
	CoinPrecision int32 = 8
)

//log type
const (
	TyLogErr = 1
	//coins
	TyLogExecTransfer = 6
	TyLogExecWithdraw = 7
	TyLogExecDeposit  = 8
	TyLogExecFrozen   = 9
	TyLogExecActive   = 10
	// TyLogExecTransferFrozen 冻结资金之间的划转
	TyLogExecTransferFrozen = 13
)

//exec type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)
