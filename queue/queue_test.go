// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiTopic(t *testing.T) {
	q := New("channel")
	defer q.Close()
	assert.Equal(t, "channel", q.Name())

	rps := q.Client()
	rps.Sub("rps")
	other := q.Client()
	other.Sub("other")

	sender := q.Client()
	require.NoError(t, sender.Send(sender.NewMessage("rps", 1, "hello")))
	require.NoError(t, sender.Send(sender.NewMessage("other", 2, "world")))

	msg := <-rps.Recv()
	assert.Equal(t, "rps", msg.Topic)
	assert.Equal(t, int64(1), msg.Ty)
	assert.Equal(t, "hello", msg.GetData())
	msg = <-other.Recv()
	assert.Equal(t, "world", msg.GetData())
	assert.Len(t, rps.Recv(), 0)
}

func TestOrderAndFanout(t *testing.T) {
	q := New("channel")
	defer q.Close()
	a := q.Client()
	a.Sub("rps")
	b := q.Client()
	b.Sub("rps")
	b.Sub("rps")

	sender := q.Client()
	for i := 0; i < 10; i++ {
		require.NoError(t, sender.Send(sender.NewMessage("rps", int64(i), nil)))
	}
	for _, c := range []Client{a, b} {
		for i := 0; i < 10; i++ {
			msg := <-c.Recv()
			assert.Equal(t, int64(i), msg.Ty)
		}
		assert.Len(t, c.Recv(), 0)
	}
}

func TestFullChanDrops(t *testing.T) {
	old := DefaultChanBuffer
	DefaultChanBuffer = 2
	defer func() { DefaultChanBuffer = old }()

	q := New("channel")
	defer q.Close()
	c := q.Client()
	c.Sub("rps")
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Send(c.NewMessage("rps", int64(i), nil)))
	}
	assert.Len(t, c.Recv(), 2)
	assert.Equal(t, int64(0), (<-c.Recv()).Ty)
	assert.Equal(t, int64(1), (<-c.Recv()).Ty)
}

func TestClose(t *testing.T) {
	q := New("channel")
	c := q.Client()
	c.Sub("rps")
	c.Close()
	_, ok := <-c.Recv()
	assert.False(t, ok)
	assert.Equal(t, types.ErrIsClosed, c.Send(c.NewMessage("rps", 1, nil)))
	c.Close()

	d := q.Client()
	d.Sub("rps")
	q.Close()
	_, ok = <-d.Recv()
	assert.False(t, ok)
	assert.Equal(t, types.ErrIsClosed, q.Client().Send(Message{Topic: "rps"}))
	q.Close()
}
