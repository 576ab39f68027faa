// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue 按 topic 订阅的消息队列
package queue

import (
	"sync"
	"sync/atomic"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
)

//消息队列：
//多对多消息队列
//消息：topic

//DefaultChanBuffer 每个订阅者的缓冲大小, 缓冲满时消息被丢弃
var DefaultChanBuffer = 1024

var qlog = log.New("module", "queue")

//Queue 消息队列
type Queue interface {
	Close()
	Name() string
	Client() Client
}

type queue struct {
	name     string
	mu       sync.RWMutex
	subs     map[string][]*client
	isClosed int32
}

//New 创建队列
func New(name string) Queue {
	q := &queue{
		name: name,
		subs: make(map[string][]*client),
	}
	return q
}

//Name 队列名称
func (q *queue) Name() string {
	return q.name
}

//Client 创建一个新的 client
func (q *queue) Client() Client {
	return newClient(q)
}

//Close 关闭队列以及所有订阅者
func (q *queue) Close() {
	if !atomic.CompareAndSwapInt32(&q.isClosed, 0, 1) {
		return
	}
	q.mu.Lock()
	closed := make(map[*client]bool)
	for _, subs := range q.subs {
		for _, sub := range subs {
			if !closed[sub] {
				closed[sub] = true
				sub.closeRecv()
			}
		}
	}
	q.subs = make(map[string][]*client)
	q.mu.Unlock()
	qlog.Info("queue module closed", "name", q.name)
}

func (q *queue) closed() bool {
	return atomic.LoadInt32(&q.isClosed) == 1
}

func (q *queue) sub(topic string, c *client) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, sub := range q.subs[topic] {
		if sub == c {
			return
		}
	}
	q.subs[topic] = append(q.subs[topic], c)
}

func (q *queue) unsub(c *client) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for topic, subs := range q.subs {
		remain := subs[:0]
		for _, sub := range subs {
			if sub != c {
				remain = append(remain, sub)
			}
		}
		if len(remain) == 0 {
			delete(q.subs, topic)
		} else {
			q.subs[topic] = remain
		}
	}
}

// send 不会阻塞发送者
func (q *queue) send(msg Message) error {
	if q.closed() {
		return types.ErrIsClosed
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	for _, sub := range q.subs[msg.Topic] {
		select {
		case sub.recv <- msg:
		default:
			qlog.Error("send chan full, drop message", "topic", msg.Topic, "ty", msg.Ty, "id", msg.ID)
		}
	}
	return nil
}

//Message 消息
type Message struct {
	Topic string
	Ty    int64
	ID    int64
	Data  interface{}
}

//NewMessage new
func NewMessage(id int64, topic string, ty int64, data interface{}) (msg Message) {
	msg.ID = id
	msg.Ty = ty
	msg.Data = data
	msg.Topic = topic
	return msg
}

//GetData get data
func (msg Message) GetData() interface{} {
	return msg.Data
}
