// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

//ChallengeCreated 创建
type ChallengeCreated struct {
	ID         ChallengeID `cbor:"1,keyasint" json:"id"`
	Challenger string      `cbor:"2,keyasint" json:"challenger"`
	Stake      int64       `cbor:"3,keyasint" json:"stake"`
}

//EnteredChallenge 对手加入
type EnteredChallenge struct {
	ID    ChallengeID `cbor:"1,keyasint" json:"id"`
	Rival string      `cbor:"2,keyasint" json:"rival"`
}

//PlayedInChallenge 出手
type PlayedInChallenge struct {
	ID     ChallengeID `cbor:"1,keyasint" json:"id"`
	Player string      `cbor:"2,keyasint" json:"player"`
}

//ChallengeReadyForReveal 双方都已出手
type ChallengeReadyForReveal struct {
	ID ChallengeID `cbor:"1,keyasint" json:"id"`
}

//ChallengeFinished 结算, Winner 为空表示平局
type ChallengeFinished struct {
	ID     ChallengeID `cbor:"1,keyasint" json:"id"`
	Winner string      `cbor:"2,keyasint,omitempty" json:"winner,omitempty"`
}

//Event 执行事件
type Event interface {
	LogTy() int32
}

//LogTy log ty
func (*ChallengeCreated) LogTy() int32 { return TyLogChallengeCreated }

//LogTy log ty
func (*EnteredChallenge) LogTy() int32 { return TyLogEnteredChallenge }

//LogTy log ty
func (*PlayedInChallenge) LogTy() int32 { return TyLogPlayedInChallenge }

//LogTy log ty
func (*ChallengeReadyForReveal) LogTy() int32 { return TyLogChallengeReadyForReveal }

//LogTy log ty
func (*ChallengeFinished) LogTy() int32 { return TyLogChallengeFinished }

//EventLog 事件转为回执日志
func EventLog(e Event) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: e.LogTy(), Log: types.Encode(e)}
}

//IsEventLog 是否是 rps 事件
func IsEventLog(ty int32) bool {
	return ty >= TyLogChallengeCreated && ty <= TyLogChallengeFinished
}

//DecodeEvent 回执日志解码为事件, 不是 rps 事件时返回 nil
func DecodeEvent(log *types.ReceiptLog) (Event, error) {
	var e Event
	switch log.Ty {
	case TyLogChallengeCreated:
		e = &ChallengeCreated{}
	case TyLogEnteredChallenge:
		e = &EnteredChallenge{}
	case TyLogPlayedInChallenge:
		e = &PlayedInChallenge{}
	case TyLogChallengeReadyForReveal:
		e = &ChallengeReadyForReveal{}
	case TyLogChallengeFinished:
		e = &ChallengeFinished{}
	default:
		return nil, nil
	}
	if err := types.Decode(log.Log, e); err != nil {
		return nil, err
	}
	return e, nil
}

//EventsOf 按顺序取出回执中的 rps 事件
func EventsOf(receipt *types.Receipt) ([]Event, error) {
	if receipt == nil {
		return nil, nil
	}
	var events []Event
	for _, log := range receipt.Logs {
		e, err := DecodeEvent(log)
		if err != nil {
			return nil, err
		}
		if e != nil {
			events = append(events, e)
		}
	}
	return events, nil
}
