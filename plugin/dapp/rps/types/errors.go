// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrInsufficientStake 押注小于最小值
	ErrInsufficientStake = errors.New("ErrInsufficientStake")
	//ErrChallengeNotFound 没有这个挑战
	ErrChallengeNotFound = errors.New("ErrChallengeNotFound")
	//ErrChallengeNotOpen 挑战已经被接受或者已经结束, 不能再加入
	ErrChallengeNotOpen = errors.New("ErrChallengeNotOpen")
	//ErrCannotChallengeOneself 不能加入自己创建的挑战
	ErrCannotChallengeOneself = errors.New("ErrCannotChallengeOneself")
	//ErrChallengeStateForbidsPlay 挑战不在 Accepted 状态
	ErrChallengeStateForbidsPlay = errors.New("ErrChallengeStateForbidsPlay")
	//ErrCannotPlayInNonParticipatingChallenge 不是参与者, 或者已经出过手
	ErrCannotPlayInNonParticipatingChallenge = errors.New("ErrCannotPlayInNonParticipatingChallenge")
	//ErrChallengeStateForbidsResolution 还有一方没有出手
	ErrChallengeStateForbidsResolution = errors.New("ErrChallengeStateForbidsResolution")
	//ErrCannotRevealNonParticipatingChallenge 不是参与者不能开奖
	ErrCannotRevealNonParticipatingChallenge = errors.New("ErrCannotRevealNonParticipatingChallenge")
	//ErrInvalidHandHash 出手和密钥与提交的哈希不一致
	ErrInvalidHandHash = errors.New("ErrInvalidHandHash")
	//ErrInvalidState 账户等外部操作失败, 原因附在错误信息里
	ErrInvalidState = errors.New("ErrInvalidState")
	//ErrInvalidMove 出手只能是 rock, paper, scissors
	ErrInvalidMove = errors.New("ErrInvalidMove")
	//ErrInvalidStatus 状态只能是 1,2,3
	ErrInvalidStatus = errors.New("ErrInvalidStatus")
)
