// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 基础结构体、接口、常量以及编解码的定义
package types

import (
	"github.com/fxamacker/cbor/v2"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var tlog = log.New("module", "types")

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	// 状态数据要求编码确定, 相同的结构体总是得到相同的字节
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: 16,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Message 可以写入数据库的结构体
type Message interface{}

// Encode 编码, 失败说明结构体定义有问题, 直接 panic
func Encode(data Message) []byte {
	b, err := encMode.Marshal(data)
	if err != nil {
		tlog.Error("Encode", "err", err)
		panic(err)
	}
	return b
}

// Decode 解码
func Decode(data []byte, msg Message) error {
	if err := decMode.Unmarshal(data, msg); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// MustDecode 数据库中的数据解码失败说明数据已经损坏
func MustDecode(data []byte, msg Message) {
	if err := Decode(data, msg); err != nil {
		panic(err)
	}
}

// KeyValue 状态数据的一次写入, Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte `cbor:"1,keyasint"`
	Value []byte `cbor:"2,keyasint,omitempty"`
}

// ReceiptLog 执行回执中的日志, Ty 决定 Log 的解码类型
type ReceiptLog struct {
	Ty  int32  `cbor:"1,keyasint"`
	Log []byte `cbor:"2,keyasint"`
}

// Receipt 一次执行的结果: 状态变更以及按顺序产生的日志
type Receipt struct {
	Ty   int32         `cbor:"1,keyasint"`
	KV   []*KeyValue   `cbor:"2,keyasint"`
	Logs []*ReceiptLog `cbor:"3,keyasint"`
}

// Merge 合并两个回执, 保持日志顺序
func (r *Receipt) Merge(other *Receipt) *Receipt {
	if other == nil {
		return r
	}
	if r == nil {
		return other
	}
	r.KV = append(r.KV, other.KV...)
	r.Logs = append(r.Logs, other.Logs...)
	return r
}

// Account 账户, Balance 为可用余额, Frozen 为冻结余额
type Account struct {
	Currency int32  `cbor:"1,keyasint"`
	Balance  int64  `cbor:"2,keyasint"`
	Frozen   int64  `cbor:"3,keyasint"`
	Addr     string `cbor:"4,keyasint"`
}

// GetBalance 可用余额
func (acc *Account) GetBalance() int64 {
	if acc == nil {
		return 0
	}
	return acc.Balance
}

// GetFrozen 冻结余额
func (acc *Account) GetFrozen() int64 {
	if acc == nil {
		return 0
	}
	return acc.Frozen
}

// ReceiptExecAccountTransfer 执行器账户变化日志
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `cbor:"1,keyasint"`
	Prev     *Account `cbor:"2,keyasint"`
	Current  *Account `cbor:"3,keyasint"`
}

// NewErrReceipt new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(err.Error())}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

// CheckAmount 检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
