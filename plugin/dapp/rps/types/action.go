// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//RpsAction 执行器的输入, Ty 决定哪一个字段有效
type RpsAction struct {
	Ty     int32      `cbor:"1,keyasint"`
	Create *RpsCreate `cbor:"2,keyasint,omitempty"`
	Enter  *RpsEnter  `cbor:"3,keyasint,omitempty"`
	Commit *RpsCommit `cbor:"4,keyasint,omitempty"`
	Reveal *RpsReveal `cbor:"5,keyasint,omitempty"`
}

//GetCreate get
func (a *RpsAction) GetCreate() *RpsCreate {
	if a != nil {
		return a.Create
	}
	return nil
}

//GetEnter get
func (a *RpsAction) GetEnter() *RpsEnter {
	if a != nil {
		return a.Enter
	}
	return nil
}

//GetCommit get
func (a *RpsAction) GetCommit() *RpsCommit {
	if a != nil {
		return a.Commit
	}
	return nil
}

//GetReveal get
func (a *RpsAction) GetReveal() *RpsReveal {
	if a != nil {
		return a.Reveal
	}
	return nil
}

//RpsCreate 创建挑战
type RpsCreate struct {
	Stake int64 `cbor:"1,keyasint"`
}

//RpsEnter 加入挑战
type RpsEnter struct {
	ID ChallengeID `cbor:"1,keyasint"`
}

//RpsCommit 提交出手的承诺, 链上只保存承诺
type RpsCommit struct {
	ID     ChallengeID `cbor:"1,keyasint"`
	Move   Move        `cbor:"2,keyasint"`
	Secret uint64      `cbor:"3,keyasint"`
}

//RpsReveal 开奖, 调用者需要同时提供自己和对手的出手与密钥
type RpsReveal struct {
	ID          ChallengeID `cbor:"1,keyasint"`
	Move        Move        `cbor:"2,keyasint"`
	Secret      uint64      `cbor:"3,keyasint"`
	RivalMove   Move        `cbor:"4,keyasint"`
	RivalSecret uint64      `cbor:"5,keyasint"`
}

//ReqChallengeList 分页查询, From 为空时从头(或尾)开始
type ReqChallengeList struct {
	Status    int32        `json:"status"`
	Addr      string       `json:"addr,omitempty"`
	From      *ChallengeID `json:"from,omitempty"`
	Count     int32        `json:"count"`
	Direction int32        `json:"direction"`
}

//ReplyChallengeList 查询结果
type ReplyChallengeList struct {
	Challenges []*ChallengeRecord `json:"challenges"`
}

//ReqChallengeCount 数量查询, Addr 为空时统计全部
type ReqChallengeCount struct {
	Status int32  `json:"status"`
	Addr   string `json:"addr,omitempty"`
}

//ReplyChallengeCount 数量
type ReplyChallengeCount struct {
	Count int64 `json:"count"`
}
