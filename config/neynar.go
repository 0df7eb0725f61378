package config

import "time"

// Neynar 社交图谱接口配置
type Neynar struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	ApiKey  string `json:"api_key" yaml:"api_key"`
	// 请求超时，单位毫秒
	TimeoutMs int `json:"timeout_ms" yaml:"timeout_ms"`
	// 调用方未携带 signer 时使用
	DefaultSignerUUID string `json:"default_signer_uuid" yaml:"default_signer_uuid"`
}

func (n *Neynar) withDefaults() {
	if n.BaseURL == "" {
		n.BaseURL = "https://api.neynar.com"
	}
	if n.TimeoutMs == 0 {
		n.TimeoutMs = 5000
	}
}

func (n *Neynar) Timeout() time.Duration {
	return time.Duration(n.TimeoutMs) * time.Millisecond
}

func ProvideNeynarConfig(cfg *Config) *Neynar {
	return cfg.Neynar
}
