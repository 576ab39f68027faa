// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//rps action ty
const (
	RpsActionCreate = iota + 1
	RpsActionEnter
	RpsActionCommit
	RpsActionReveal
)

//challenge status
const (
	StatusOpen     = int32(1)
	StatusAccepted = int32(2)
	StatusFinished = int32(3)
)

//log ty, 与执行事件一一对应
const (
	TyLogChallengeCreated        = 2101
	TyLogEnteredChallenge        = 2102
	TyLogPlayedInChallenge       = 2103
	TyLogChallengeReadyForReveal = 2104
	TyLogChallengeFinished       = 2105
)

//const
const (
	PackageName = "github.com/33cn/rps"
	RpsX        = "rps"
)

var (
	//ExecerRps 执行器名称
	ExecerRps = []byte(RpsX)
)

//StatusName 状态名称
func StatusName(status int32) string {
	switch status {
	case StatusOpen:
		return "Open"
	case StatusAccepted:
		return "Accepted"
	case StatusFinished:
		return "Finished"
	}
	return "Unknown"
}

//CheckStatus 合法的状态为 1,2,3
func CheckStatus(status int32) error {
	if status < StatusOpen || status > StatusFinished {
		return ErrInvalidStatus
	}
	return nil
}
