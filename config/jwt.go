package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 访问令牌有效期，单位秒
	ExpiresTime int64 `json:"expires_time" yaml:"expires_time"`
}

func (j *Jwt) withDefaults() {
	if j.ExpiresTime == 0 {
		j.ExpiresTime = 7 * 24 * 3600
	}
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpiresTime) * time.Second
}
