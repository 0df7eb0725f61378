package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Neynar   *Neynar         `json:"neynar" yaml:"neynar"`
	Ledger   *Ledger         `json:"ledger" yaml:"ledger"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
	// 每个客户端每秒请求数，0 不限流
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`
	RateBurst int     `json:"rate_burst" yaml:"rate_burst"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 并填充默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	if conf.App == nil {
		conf.App = &App{}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 8080
	}
	if conf.MySQL == nil {
		conf.MySQL = &MySQL{}
	}
	if conf.Redis == nil {
		conf.Redis = &Redis{}
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.Neynar == nil {
		conf.Neynar = &Neynar{}
	}
	if conf.Ledger == nil {
		conf.Ledger = &Ledger{}
	}
	if conf.RocketMQ == nil {
		conf.RocketMQ = &RocketMQConfig{}
	}

	conf.MySQL.withDefaults()
	conf.Jwt.withDefaults()
	conf.Neynar.withDefaults()
	conf.Ledger.withDefaults()
	conf.RocketMQ.withDefaults()

	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
