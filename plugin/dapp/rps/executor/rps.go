// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"time"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/metrics"
	rt "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/queue"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs.rps")

// 统计的操作名
const (
	opCreate   = "create"
	opEnter    = "enter"
	opCommit   = "commit"
	opReveal   = "reveal"
	opDeposit  = "deposit"
	opWithdraw = "withdraw"
)

//Rps 石头剪刀布执行器, 每次操作在 StateDB 的一个事务中完成
type Rps struct {
	cfg       *types.Rps
	sdb       *dbm.StateDB
	newLedger LedgerCreator
	execaddr  string
	client    queue.Client
	registry  go_metrics.Registry
	ops       map[string]*metrics.OpMetrics
}

//Option 执行器选项
type Option func(*Rps)

//WithLedger 替换账户实现
func WithLedger(creator LedgerCreator) Option {
	return func(r *Rps) {
		r.newLedger = creator
	}
}

//WithQueue 提交成功后把事件发布到 cfg.EventTopic
func WithQueue(client queue.Client) Option {
	return func(r *Rps) {
		r.client = client
	}
}

//WithRegistry 统计使用的 registry
func WithRegistry(registry go_metrics.Registry) Option {
	return func(r *Rps) {
		r.registry = registry
	}
}

//New 创建执行器
func New(cfg *types.Rps, sdb *dbm.StateDB, opts ...Option) *Rps {
	r := &Rps{
		cfg:       cfg,
		sdb:       sdb,
		newLedger: NewCoinsLedger,
		execaddr:  address.ExecAddress(rt.RpsX),
		registry:  go_metrics.DefaultRegistry,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.ops = make(map[string]*metrics.OpMetrics)
	for _, op := range []string{opCreate, opEnter, opCommit, opReveal, opDeposit, opWithdraw} {
		r.ops[op] = metrics.NewOpMetrics(r.registry, op)
	}
	return r
}

//GetName 执行器名称
func (r *Rps) GetName() string {
	return rt.RpsX
}

//ExecAddress 托管押注的执行器地址
func (r *Rps) ExecAddress() string {
	return r.execaddr
}

func (r *Rps) exec(op, from string, fn func(action *Action) (*types.Receipt, error)) (*types.Receipt, error) {
	start := time.Now()
	var receipt *types.Receipt
	err := address.CheckAddress(from)
	if err != nil {
		err = errors.Wrapf(types.ErrInvalidAddress, "%s: %v", from, err)
	} else {
		err = r.sdb.Update(func(kv dbm.KV) error {
			var err error
			receipt, err = fn(NewAction(r, kv, from))
			return err
		})
	}
	r.ops[op].Observe(start, err)
	if err != nil {
		elog.Error("exec", "op", op, "addr", from, "err", err)
		return nil, err
	}
	r.publish(receipt)
	return receipt, nil
}

// publish 只发布已提交的事件
func (r *Rps) publish(receipt *types.Receipt) {
	if r.client == nil {
		return
	}
	for _, l := range receipt.Logs {
		if !rt.IsEventLog(l.Ty) {
			continue
		}
		e, err := rt.DecodeEvent(l)
		if err != nil {
			elog.Error("publish", "ty", l.Ty, "err", err)
			continue
		}
		msg := r.client.NewMessage(r.cfg.EventTopic, int64(l.Ty), e)
		if err := r.client.Send(msg); err != nil {
			elog.Error("publish", "ty", l.Ty, "err", err)
		}
	}
}

//CreateChallenge 创建挑战
func (r *Rps) CreateChallenge(from string, stake int64) (*types.Receipt, error) {
	return r.exec(opCreate, from, func(action *Action) (*types.Receipt, error) {
		return action.CreateChallenge(stake)
	})
}

//EnterChallenge 加入挑战
func (r *Rps) EnterChallenge(from string, id rt.ChallengeID) (*types.Receipt, error) {
	return r.exec(opEnter, from, func(action *Action) (*types.Receipt, error) {
		return action.EnterChallenge(id)
	})
}

//CommitMove 提交出手的承诺
func (r *Rps) CommitMove(from string, id rt.ChallengeID, move rt.Move, secret uint64) (*types.Receipt, error) {
	return r.exec(opCommit, from, func(action *Action) (*types.Receipt, error) {
		return action.CommitMove(id, move, secret)
	})
}

//RevealAndSettle 公布双方出手并结算
func (r *Rps) RevealAndSettle(from string, move rt.Move, secret uint64, rivalMove rt.Move, rivalSecret uint64, id rt.ChallengeID) (*types.Receipt, error) {
	return r.exec(opReveal, from, func(action *Action) (*types.Receipt, error) {
		return action.RevealAndSettle(id, move, secret, rivalMove, rivalSecret)
	})
}

//Deposit 充值到执行器账户
func (r *Rps) Deposit(from string, amount int64) (*types.Receipt, error) {
	return r.exec(opDeposit, from, func(action *Action) (*types.Receipt, error) {
		return action.Deposit(amount)
	})
}

//Withdraw 从执行器账户取出
func (r *Rps) Withdraw(from string, amount int64) (*types.Receipt, error) {
	return r.exec(opWithdraw, from, func(action *Action) (*types.Receipt, error) {
		return action.Withdraw(amount)
	})
}

//Exec 执行编码后的 RpsAction
func (r *Rps) Exec(from string, payload []byte) (*types.Receipt, error) {
	var action rt.RpsAction
	if err := types.Decode(payload, &action); err != nil {
		return nil, err
	}
	switch {
	case action.Ty == rt.RpsActionCreate && action.GetCreate() != nil:
		return r.CreateChallenge(from, action.GetCreate().Stake)
	case action.Ty == rt.RpsActionEnter && action.GetEnter() != nil:
		return r.EnterChallenge(from, action.GetEnter().ID)
	case action.Ty == rt.RpsActionCommit && action.GetCommit() != nil:
		commit := action.GetCommit()
		return r.CommitMove(from, commit.ID, commit.Move, commit.Secret)
	case action.Ty == rt.RpsActionReveal && action.GetReveal() != nil:
		reveal := action.GetReveal()
		return r.RevealAndSettle(from, reveal.Move, reveal.Secret, reveal.RivalMove, reveal.RivalSecret, reveal.ID)
	}
	return nil, types.ErrActionNotSupport
}
