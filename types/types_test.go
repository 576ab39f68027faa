// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDeterministic(t *testing.T) {
	acc := &Account{Balance: 10 * Coin, Frozen: Coin, Addr: "1CbEVT9RnM5oZhWMj4fxUrJX94VtRotzvs"}
	a := Encode(acc)
	b := Encode(&Account{Addr: acc.Addr, Frozen: acc.Frozen, Balance: acc.Balance})
	assert.Equal(t, a, b)

	var out Account
	require.NoError(t, Decode(a, &out))
	assert.Equal(t, *acc, out)
}

func TestDecodeError(t *testing.T) {
	var out Account
	err := Decode([]byte{0xff, 0x01}, &out)
	assert.True(t, errors.Is(err, ErrDecode))
	assert.Panics(t, func() { MustDecode([]byte{0xff}, &out) })
}

func TestReceiptMerge(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, Logs: []*ReceiptLog{{Ty: TyLogExecFrozen}}}
	r2 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("k")}}, Logs: []*ReceiptLog{{Ty: TyLogExecActive}}}
	r := r1.Merge(r2)
	require.Len(t, r.Logs, 2)
	assert.Equal(t, int32(TyLogExecFrozen), r.Logs[0].Ty)
	assert.Equal(t, int32(TyLogExecActive), r.Logs[1].Ty)
	assert.Len(t, r.KV, 1)

	var empty *Receipt
	assert.Equal(t, r2, empty.Merge(r2))
}

func TestCheckAmount(t *testing.T) {
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(1))
	assert.True(t, CheckAmount(MaxCoin-1))
}
