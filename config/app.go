package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// 邀请码 hashids 盐值
	ReferralSalt string `json:"referral_salt" yaml:"referral_salt"`
	// snowflake 节点号
	NodeID int64 `json:"node_id" yaml:"node_id"`
}
