// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器操作的计数与耗时统计
package metrics

import (
	"io"
	"time"

	rpslog "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = rpslog.New("module", "rps metrics")
)

//Namespace 指标名前缀
var Namespace = "rps"

//OpMetrics 一个操作的成功/失败次数以及耗时
type OpMetrics struct {
	OK   go_metrics.Meter
	Fail go_metrics.Meter
	Time go_metrics.Timer
}

//NewOpMetrics 在 registry 中注册 <Namespace>.<op>.{ok,fail,time}, 已注册时复用
func NewOpMetrics(registry go_metrics.Registry, op string) *OpMetrics {
	if registry == nil {
		registry = go_metrics.DefaultRegistry
	}
	prefix := Namespace + "." + op + "."
	return &OpMetrics{
		OK:   go_metrics.GetOrRegisterMeter(prefix+"ok", registry),
		Fail: go_metrics.GetOrRegisterMeter(prefix+"fail", registry),
		Time: go_metrics.GetOrRegisterTimer(prefix+"time", registry),
	}
}

//Observe 记录一次调用
func (m *OpMetrics) Observe(start time.Time, err error) {
	m.Time.UpdateSince(start)
	if err != nil {
		m.Fail.Mark(1)
		return
	}
	m.OK.Mark(1)
}

//Dump 把 registry 的快照写到日志
func Dump(registry go_metrics.Registry) {
	registry.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case go_metrics.Meter:
			m := metric.Snapshot()
			log.Info("meter", "name", name, "count", m.Count(), "rate1", m.Rate1())
		case go_metrics.Timer:
			t := metric.Snapshot()
			log.Info("timer", "name", name, "count", t.Count(), "mean", time.Duration(t.Mean()), "p99", time.Duration(t.Percentile(0.99)))
		case go_metrics.Counter:
			log.Info("counter", "name", name, "count", metric.Count())
		}
	})
}

//WriteOnce 以文本形式输出 registry
func WriteOnce(registry go_metrics.Registry, w io.Writer) {
	go_metrics.WriteOnce(registry, w)
}

//StartMetrics 根据配置文件相关参数启动定时输出, 返回的函数用于停止
func StartMetrics(cfg *types.Metrics, registry go_metrics.Registry) (stop func()) {
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return func() {}
	}
	duration := time.Duration(cfg.Duration) * time.Second
	if duration <= 0 {
		duration = 10 * time.Second
	}
	log.Info("StartMetrics", "duration", duration)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(duration)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				Dump(registry)
			case <-done:
				Dump(registry)
				return
			}
		}
	}()
	return func() { close(done) }
}
