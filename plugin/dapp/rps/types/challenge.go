// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

//ChallengeID 挑战编号, 从 0 开始递增, 不会复用
type ChallengeID uint64

//ChallengeState 挑战在任意时刻只处于 Open, Accepted, Finished 之一
type ChallengeState interface {
	Status() int32
	GetChallenger() string
	GetStake() int64
	challengeState()
}

//Open 等待对手加入
type Open struct {
	Challenger string
	Stake      int64
}

//Accepted 对手已加入, 等待双方出手和开奖
type Accepted struct {
	Challenger string
	Rival      string
	Stake      int64
}

//Finished 已结算, Winner 为空表示平局
type Finished struct {
	Challenger string
	Rival      string
	Stake      int64
	Winner     string
}

func (*Open) challengeState()     {}
func (*Accepted) challengeState() {}
func (*Finished) challengeState() {}

//Status status
func (*Open) Status() int32 { return StatusOpen }

//Status status
func (*Accepted) Status() int32 { return StatusAccepted }

//Status status
func (*Finished) Status() int32 { return StatusFinished }

//GetChallenger 创建者
func (c *Open) GetChallenger() string { return c.Challenger }

//GetChallenger 创建者
func (c *Accepted) GetChallenger() string { return c.Challenger }

//GetChallenger 创建者
func (c *Finished) GetChallenger() string { return c.Challenger }

//GetStake 押注
func (c *Open) GetStake() int64 { return c.Stake }

//GetStake 押注
func (c *Accepted) GetStake() int64 { return c.Stake }

//GetStake 押注
func (c *Finished) GetStake() int64 { return c.Stake }

//Accept 对手加入
func (c *Open) Accept(rival string) *Accepted {
	return &Accepted{Challenger: c.Challenger, Rival: rival, Stake: c.Stake}
}

//Contains 是否为参与者
func (c *Accepted) Contains(addr string) bool {
	return c.Challenger == addr || c.Rival == addr
}

//Counterparty 参与者的对手
func (c *Accepted) Counterparty(addr string) (string, bool) {
	switch addr {
	case c.Challenger:
		return c.Rival, true
	case c.Rival:
		return c.Challenger, true
	}
	return "", false
}

//Finish 结算, winner 为空表示平局
func (c *Accepted) Finish(winner string) *Finished {
	return &Finished{Challenger: c.Challenger, Rival: c.Rival, Stake: c.Stake, Winner: winner}
}

//IsDraw 是否平局
func (c *Finished) IsDraw() bool {
	return c.Winner == ""
}

//ChallengeRecord 挑战的存储格式, 也是查询的返回结果
type ChallengeRecord struct {
	ID         ChallengeID `cbor:"1,keyasint" json:"id"`
	Status     int32       `cbor:"2,keyasint" json:"status"`
	Challenger string      `cbor:"3,keyasint" json:"challenger"`
	Rival      string      `cbor:"4,keyasint,omitempty" json:"rival,omitempty"`
	Stake      int64       `cbor:"5,keyasint" json:"stake"`
	Winner     string      `cbor:"6,keyasint,omitempty" json:"winner,omitempty"`
}

//NewChallengeRecord 从状态生成记录
func NewChallengeRecord(id ChallengeID, state ChallengeState) *ChallengeRecord {
	r := &ChallengeRecord{ID: id, Status: state.Status(), Challenger: state.GetChallenger(), Stake: state.GetStake()}
	switch s := state.(type) {
	case *Accepted:
		r.Rival = s.Rival
	case *Finished:
		r.Rival = s.Rival
		r.Winner = s.Winner
	}
	return r
}

//State 从记录还原状态, 不满足状态约束的记录视为损坏
func (r *ChallengeRecord) State() (ChallengeState, error) {
	if r.Challenger == "" || r.Stake <= 0 {
		return nil, errors.Wrapf(ErrInvalidState, "challenge %d: bad record", r.ID)
	}
	switch r.Status {
	case StatusOpen:
		if r.Rival != "" || r.Winner != "" {
			return nil, errors.Wrapf(ErrInvalidState, "challenge %d: open with rival", r.ID)
		}
		return &Open{Challenger: r.Challenger, Stake: r.Stake}, nil
	case StatusAccepted:
		if r.Rival == "" || r.Rival == r.Challenger || r.Winner != "" {
			return nil, errors.Wrapf(ErrInvalidState, "challenge %d: bad accepted record", r.ID)
		}
		return &Accepted{Challenger: r.Challenger, Rival: r.Rival, Stake: r.Stake}, nil
	case StatusFinished:
		if r.Rival == "" || r.Rival == r.Challenger {
			return nil, errors.Wrapf(ErrInvalidState, "challenge %d: bad finished record", r.ID)
		}
		if r.Winner != "" && r.Winner != r.Challenger && r.Winner != r.Rival {
			return nil, errors.Wrapf(ErrInvalidState, "challenge %d: winner %s is not a participant", r.ID, r.Winner)
		}
		return &Finished{Challenger: r.Challenger, Rival: r.Rival, Stake: r.Stake, Winner: r.Winner}, nil
	}
	return nil, errors.Wrapf(ErrInvalidState, "challenge %d: status %d", r.ID, r.Status)
}

func (r *ChallengeRecord) String() string {
	return fmt.Sprintf("challenge %d %s challenger=%s rival=%s stake=%d winner=%s",
		r.ID, StatusName(r.Status), r.Challenger, r.Rival, r.Stake, r.Winner)
}

//EncodeChallenge 编码
func EncodeChallenge(id ChallengeID, state ChallengeState) []byte {
	return types.Encode(NewChallengeRecord(id, state))
}

//DecodeChallenge 解码并校验
func DecodeChallenge(data []byte) (*ChallengeRecord, ChallengeState, error) {
	var r ChallengeRecord
	if err := types.Decode(data, &r); err != nil {
		return nil, nil, errors.Wrap(ErrInvalidState, err.Error())
	}
	state, err := r.State()
	if err != nil {
		return nil, nil, err
	}
	return &r, state, nil
}
