// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/rps/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("rps")
	assert.Equal(t, addr, ExecAddress("rps"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
	require.NoError(t, CheckAddress(addr))
	assert.Equal(t, byte('1'), addr[0])
}

func TestPubKeyToAddress(t *testing.T) {
	pub := common.Sha256([]byte("alice"))
	addr := PubKeyToAddress(pub)
	require.NoError(t, CheckAddress(addr.String()))

	parsed, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, parsed.Hash160)
	assert.Equal(t, addr.String(), parsed.String())
}

func TestCheckAddress(t *testing.T) {
	addr := PubKeyToAddress(common.Sha256([]byte("bob"))).String()
	last := addr[len(addr)-1]
	swap := byte('2')
	if last == swap {
		swap = '3'
	}
	bad := addr[:len(addr)-1] + string(swap)

	assert.Error(t, CheckAddress(bad))
	// 第二次从缓存中取
	assert.Error(t, CheckAddress(bad))
	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("0OIl"))
	assert.Error(t, CheckAddress("3J98t1"))

	_, err := NewAddrFromString(bad)
	assert.Error(t, err)
}

func TestExecNameTooLong(t *testing.T) {
	name := make([]byte, MaxExecNameLength+1)
	for i := range name {
		name[i] = 'a'
	}
	assert.Panics(t, func() { ExecPubKey(string(name)) })
}
