// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// 默认配置项
const (
	DefaultMinimumStake = 1 * Coin
	DefaultMaxRetries   = 8
	DefaultEventTopic   = "rps"
	DefaultStoreDriver  = "leveldb"
	// MaxStake 结算时赢家解冻两倍押注, 两倍押注也必须是合法金额
	MaxStake            = MaxCoin/2 - 1
)

// Config 配置文件的结构
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Rps     *Rps     `toml:"rps"`
	Metrics *Metrics `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态数据库配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Rps 石头剪刀布执行器配置
type Rps struct {
	// 最小下注金额, 单位为最小货币单位
	MinimumStake int64 `toml:"minimumStake"`
	// 最大下注金额, 保证 2 倍下注金额不会溢出
	MaximumStake int64 `toml:"maximumStake"`
	// 乐观并发冲突时的最大重试次数
	MaxRetries int    `toml:"maxRetries"`
	EventTopic string `toml:"eventTopic"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 以秒为单位的输出间隔
	Duration int64 `toml:"duration"`
}

// InitCfg 从文件初始化配置
func InitCfg(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrConfigNotFound, "read %s: %v", path, err)
	}
	return InitCfgString(string(data))
}

// InitCfgString 从字符串初始化配置, 未配置的项填默认值
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	FillDefault(&cfg)
	if err := cfg.Rps.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig 单元测试使用的内存配置
func DefaultConfig() *Config {
	cfg := &Config{Title: "local"}
	FillDefault(cfg)
	cfg.Store.Driver = "memdb"
	return cfg
}

// FillDefault 填充默认配置
func FillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "rps"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DefaultStoreDriver
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Rps == nil {
		cfg.Rps = &Rps{}
	}
	if cfg.Rps.MinimumStake == 0 {
		cfg.Rps.MinimumStake = DefaultMinimumStake
	}
	if cfg.Rps.MaximumStake == 0 {
		cfg.Rps.MaximumStake = MaxStake
	}
	if cfg.Rps.MaxRetries == 0 {
		cfg.Rps.MaxRetries = DefaultMaxRetries
	}
	if cfg.Rps.EventTopic == "" {
		cfg.Rps.EventTopic = DefaultEventTopic
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

func (r *Rps) check() error {
	if r.MinimumStake < 0 || r.MinimumStake > r.MaximumStake {
		return errors.Wrapf(ErrInvalidParam, "minimumStake %d maximumStake %d", r.MinimumStake, r.MaximumStake)
	}
	if !CheckAmount(r.MaximumStake) || r.MaximumStake > MaxStake {
		return errors.Wrapf(ErrInvalidParam, "maximumStake %d out of range", r.MaximumStake)
	}
	if r.MaxRetries < 0 {
		return errors.Wrapf(ErrInvalidParam, "maxRetries %d", r.MaxRetries)
	}
	return nil
}
