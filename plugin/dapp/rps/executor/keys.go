// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rt "github.com/33cn/rps/plugin/dapp/rps/types"
)

/*
  状态数据(mavl-rps-)：
     下一个挑战编号:   mavl-rps-nextid
     挑战:             mavl-rps-challenge:<id>
     出手承诺:         mavl-rps-commitment:<id>:<addr>
  本地索引(LODB-rps-)，与状态数据在同一个事务中写入：
     状态索引:         LODB-rps-status:<status>:<id>
     状态地址索引:     LODB-rps-addr:<status>:<addr>:<id>
  id 统一格式化成 20 位十进制，保证按字节序迭代就是按编号排序。
  挑战状态变化时删除老状态的索引，以免形成脏数据。
*/

const idFormat = "%020d"

func calcNextIDKey() []byte {
	return []byte("mavl-" + rt.RpsX + "-nextid")
}

//Key challenge id to save key
func Key(id rt.ChallengeID) (key []byte) {
	key = append(key, []byte("mavl-"+rt.RpsX+"-challenge:")...)
	key = append(key, []byte(fmt.Sprintf(idFormat, id))...)
	return key
}

func calcCommitmentKey(id rt.ChallengeID, addr string) []byte {
	return []byte(fmt.Sprintf("mavl-"+rt.RpsX+"-commitment:"+idFormat+":%s", id, addr))
}

func calcRpsStatusIndexKey(status int32, id rt.ChallengeID) []byte {
	return []byte(fmt.Sprintf("LODB-"+rt.RpsX+"-status:%d:"+idFormat, status, id))
}

func calcRpsStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-"+rt.RpsX+"-status:%d:", status))
}

func calcRpsAddrIndexKey(status int32, addr string, id rt.ChallengeID) []byte {
	return []byte(fmt.Sprintf("LODB-"+rt.RpsX+"-addr:%d:%s:"+idFormat, status, addr, id))
}

func calcRpsAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-"+rt.RpsX+"-addr:%d:%s:", status, addr))
}
