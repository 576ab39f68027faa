// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"strconv"
	"strings"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/queue"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//AccountResult 账户余额, 单位为币
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

//ReceiptAccountTransfer 账户变化
type ReceiptAccountTransfer struct {
	ExecAddr string         `json:"execAddr"`
	Prev     *AccountResult `json:"prev"`
	Current  *AccountResult `json:"current"`
}

//ReceiptLogResult 账户日志
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
}

//EventResult 提交后发布的事件
type EventResult struct {
	Topic  string      `json:"topic"`
	Ty     int64       `json:"ty"`
	TyName string      `json:"tyName"`
	Event  interface{} `json:"event"`
}

//ReceiptResult 执行结果
type ReceiptResult struct {
	Logs   []*ReceiptLogResult `json:"logs,omitempty"`
	Events []*EventResult      `json:"events,omitempty"`
}

//ChallengeResult 挑战, 押注单位为币
type ChallengeResult struct {
	ID         rt.ChallengeID `json:"id"`
	Status     string         `json:"status"`
	Challenger string         `json:"challenger"`
	Rival      string         `json:"rival,omitempty"`
	Stake      string         `json:"stake"`
	Winner     string         `json:"winner,omitempty"`
}

var logNames = map[int32]string{
	types.TyLogExecDeposit:          "LogExecDeposit",
	types.TyLogExecWithdraw:         "LogExecWithdraw",
	types.TyLogExecFrozen:           "LogExecFrozen",
	types.TyLogExecActive:           "LogExecActive",
	types.TyLogExecTransferFrozen:   "LogExecTransferFrozen",
	rt.TyLogChallengeCreated:        "ChallengeCreated",
	rt.TyLogEnteredChallenge:        "EnteredChallenge",
	rt.TyLogPlayedInChallenge:       "PlayedInChallenge",
	rt.TyLogChallengeReadyForReveal: "ChallengeReadyForReveal",
	rt.TyLogChallengeFinished:       "ChallengeFinished",
}

func logName(ty int32) string {
	if name, ok := logNames[ty]; ok {
		return name
	}
	return "LogReserved"
}

//ParseCoins 币转为最小单位, 最多 8 位小数
func ParseCoins(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "%s: %v", s, err)
	}
	d = d.Shift(types.CoinPrecision)
	if !d.Equal(d.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "%s: more than %d decimal places", s, types.CoinPrecision)
	}
	if d.Sign() <= 0 || d.GreaterThanOrEqual(decimal.New(types.MaxCoin, 0)) {
		return 0, errors.Wrapf(types.ErrAmount, "%s: out of range", s)
	}
	return d.IntPart(), nil
}

//FormatCoins 最小单位转为币
func FormatCoins(amount int64) string {
	return decimal.New(amount, -types.CoinPrecision).StringFixed(types.CoinPrecision)
}

func accountResult(acc *types.Account) *AccountResult {
	if acc == nil {
		return nil
	}
	return &AccountResult{Addr: acc.Addr, Balance: FormatCoins(acc.Balance), Frozen: FormatCoins(acc.Frozen)}
}

func challengeResult(r *rt.ChallengeRecord) *ChallengeResult {
	return &ChallengeResult{
		ID:         r.ID,
		Status:     rt.StatusName(r.Status),
		Challenger: r.Challenger,
		Rival:      r.Rival,
		Stake:      FormatCoins(r.Stake),
		Winner:     r.Winner,
	}
}

// receiptResult 账户日志来自回执, 事件来自订阅
func receiptResult(receipt *types.Receipt, msgs []queue.Message) (*ReceiptResult, error) {
	result := &ReceiptResult{}
	for _, l := range receipt.Logs {
		if rt.IsEventLog(l.Ty) {
			continue
		}
		item := &ReceiptLogResult{Ty: l.Ty, TyName: logName(l.Ty)}
		var transfer types.ReceiptExecAccountTransfer
		if err := types.Decode(l.Log, &transfer); err == nil {
			item.Log = &ReceiptAccountTransfer{
				ExecAddr: transfer.ExecAddr,
				Prev:     accountResult(transfer.Prev),
				Current:  accountResult(transfer.Current),
			}
		}
		result.Logs = append(result.Logs, item)
	}
	for _, msg := range msgs {
		result.Events = append(result.Events, &EventResult{
			Topic:  msg.Topic,
			Ty:     msg.Ty,
			TyName: logName(int32(msg.Ty)),
			Event:  msg.GetData(),
		})
	}
	return result, nil
}

//ParseStatus 状态可以是名称或者数字
func ParseStatus(s string) (int32, error) {
	for _, status := range []int32{rt.StatusOpen, rt.StatusAccepted, rt.StatusFinished} {
		name := rt.StatusName(status)
		if strings.EqualFold(s, name) || s == strconv.Itoa(int(status)) {
			return status, nil
		}
	}
	return 0, errors.Wrapf(rt.ErrInvalidStatus, "%s", s)
}
