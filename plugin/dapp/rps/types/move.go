// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
)

//Move 出手
type Move uint8

//出手的 tag 参与哈希计算, 不能修改
const (
	//石头
	Rock = Move(1)
	//布
	Paper = Move(2)
	//剪刀
	Scissors = Move(3)
)

//Valid 是否是合法的出手
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

//ParseMove 不区分大小写
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "scissor", "s":
		return Scissors, nil
	}
	return 0, ErrInvalidMove
}

//CommitmentSize 承诺的字节数
const CommitmentSize = 8

//Commitment 对 (出手, 密钥) 的承诺
type Commitment [CommitmentSize]byte

func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

//CommitmentFromBytes 长度必须为 8
func CommitmentFromBytes(b []byte) (c Commitment, ok bool) {
	if len(b) != CommitmentSize {
		return c, false
	}
	copy(c[:], b)
	return c, true
}

//CommitmentOf twox-64: xxhash64(seed 0) 计算 tag || LE64(secret), 结果按小端序输出
func CommitmentOf(m Move, secret uint64) Commitment {
	var buf [9]byte
	buf[0] = byte(m)
	binary.LittleEndian.PutUint64(buf[1:], secret)
	var c Commitment
	binary.LittleEndian.PutUint64(c[:], xxhash.Sum64(buf[:]))
	return c
}

//Verify 出手和密钥是否与承诺一致
func Verify(m Move, secret uint64, c Commitment) bool {
	return CommitmentOf(m, secret) == c
}

//Outcome 对局结果, 以 a 的视角
type Outcome int32

//outcome
const (
	AWins = Outcome(1)
	BWins = Outcome(2)
	Draw  = Outcome(3)
)

func (o Outcome) String() string {
	switch o {
	case AWins:
		return "AWins"
	case BWins:
		return "BWins"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

//Opposite 以 b 的视角
func (o Outcome) Opposite() Outcome {
	switch o {
	case AWins:
		return BWins
	case BWins:
		return AWins
	}
	return o
}

// 石头赢剪刀, 剪刀赢布, 布赢石头
func beats(a, b Move) bool {
	return (a == Rock && b == Scissors) ||
		(a == Scissors && b == Paper) ||
		(a == Paper && b == Rock)
}

//Resolve 相同出手为平局
func Resolve(a, b Move) Outcome {
	if a == b {
		return Draw
	}
	if beats(a, b) {
		return AWins
	}
	return BWins
}
