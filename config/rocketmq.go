package config

const DefaultEventTopic = "follow_coins"

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`

	Topic string `yaml:"topic"`

	Producer Producer `yaml:"producer"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

// Enabled 未配置 nameserver 时不投递事件
func (r *RocketMQConfig) Enabled() bool {
	return len(r.NameServer) > 0
}

func (r *RocketMQConfig) withDefaults() {
	if r.Topic == "" {
		r.Topic = DefaultEventTopic
	}
	if r.Producer.Group == "" {
		r.Producer.Group = "follow_coins_producer"
	}
	if r.Producer.Retry == 0 {
		r.Producer.Retry = 2
	}
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
