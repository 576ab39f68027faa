// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	"github.com/33cn/rps/queue"
	"github.com/33cn/rps/types"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

//Callback 格式化结果
type Callback func(res interface{}) (interface{}, error)

//Env 一次命令使用的执行器以及事件订阅
type Env struct {
	Rps    *executor.Rps
	Events queue.Client
	sdb    *dbm.StateDB
	q      queue.Queue
	stop   func()
}

//OpenEnv 根据配置文件打开本地状态数据库
func OpenEnv(conf string) (*Env, error) {
	cfg, err := types.InitCfg(conf)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	sdb := dbm.NewStateDB(db, cfg.Rps.MaxRetries)
	q := queue.New("channel")
	events := q.Client()
	events.Sub(cfg.Rps.EventTopic)
	registry := go_metrics.NewRegistry()
	env := &Env{
		Rps:    executor.New(cfg.Rps, sdb, executor.WithQueue(q.Client()), executor.WithRegistry(registry)),
		Events: events,
		sdb:    sdb,
		q:      q,
		stop:   metrics.StartMetrics(cfg.Metrics, registry),
	}
	return env, nil
}

//Drain 取出已经发布的事件
func (env *Env) Drain() (msgs []queue.Message) {
	for {
		select {
		case msg, ok := <-env.Events.Recv():
			if !ok {
				return msgs
			}
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

//Close 关闭
func (env *Env) Close() {
	env.stop()
	env.Events.Close()
	env.q.Close()
	env.sdb.Close()
}

//LocalCtx 在本地执行器上执行一次操作, 结果以 json 输出
type LocalCtx struct {
	cmd *cobra.Command
	fn  func(env *Env) (interface{}, error)
	cb  Callback
}

//NewLocalCtx new
func NewLocalCtx(cmd *cobra.Command, fn func(env *Env) (interface{}, error)) *LocalCtx {
	return &LocalCtx{cmd: cmd, fn: fn}
}

//SetResultCb 设置结果的格式化函数
func (c *LocalCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

//Run 执行
func (c *LocalCtx) Run() {
	conf, _ := c.cmd.Flags().GetString("conf")
	env, err := OpenEnv(conf)
	if err != nil {
		fmt.Fprintln(c.cmd.ErrOrStderr(), err)
		return
	}
	defer env.Close()

	res, err := c.fn(env)
	if err != nil {
		fmt.Fprintln(c.cmd.ErrOrStderr(), err)
		return
	}
	// maybe format result
	var result interface{}
	if c.cb != nil {
		result, err = c.cb(res)
		if err != nil {
			fmt.Fprintln(c.cmd.ErrOrStderr(), err)
			return
		}
	} else {
		result = res
	}

	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(c.cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(c.cmd.OutOrStdout(), string(data))
}
