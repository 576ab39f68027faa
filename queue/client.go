// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"sync"
	"sync/atomic"

	"github.com/33cn/rps/types"
)

//消息队列的主要作用是解耦合，让各个模块相对的独立运行。
//每个模块都会有一个client 对象
//主要的操作大致如下：
// client := q.Client()
// client.Sub("topicname")
// for msg := range client.Recv() {
//     process(msg)
// }
// process 函数会调用 处理具体的消息逻辑

var gid int64

//Client 队列的客户端
type Client interface {
	Send(msg Message) (err error) //异步发送消息
	Recv() chan Message
	Sub(topic string) //订阅消息
	Close()
	NewMessage(topic string, ty int64, data interface{}) (msg Message)
}

type client struct {
	q        *queue
	recv     chan Message
	once     sync.Once
	isClosed int32
}

func newClient(q *queue) *client {
	client := &client{}
	client.q = q
	client.recv = make(chan Message, DefaultChanBuffer)
	return client
}

//Send 发送给所有订阅了 msg.Topic 的 client
func (client *client) Send(msg Message) (err error) {
	if client.isClose() {
		return types.ErrIsClosed
	}
	return client.q.send(msg)
}

func (client *client) NewMessage(topic string, ty int64, data interface{}) (msg Message) {
	id := atomic.AddInt64(&gid, 1)
	return NewMessage(id, topic, ty, data)
}

func (client *client) Recv() chan Message {
	return client.recv
}

func (client *client) isClose() bool {
	return atomic.LoadInt32(&client.isClosed) == 1
}

func (client *client) Sub(topic string) {
	//正在关闭或者已经关闭
	if client.isClose() || client.q.closed() {
		return
	}
	client.q.sub(topic, client)
	qlog.Debug("sub", "topic", topic)
}

//Close 取消订阅, 并关闭 Recv 通道
func (client *client) Close() {
	if client.isClose() {
		return
	}
	client.q.unsub(client)
	client.closeRecv()
}

// 调用时已经不在订阅列表中, 或者持有队列的写锁
func (client *client) closeRecv() {
	client.once.Do(func() {
		atomic.StoreInt32(&client.isClosed, 1)
		close(client.recv)
	})
}
