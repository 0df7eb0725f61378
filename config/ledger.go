package config

import "time"

// Ledger 金币规则
type Ledger struct {
	StartingCoins    int64 `json:"starting_coins" yaml:"starting_coins"`
	PricePerFollower int64 `json:"price_per_follower" yaml:"price_per_follower"`
	FollowReward     int64 `json:"follow_reward" yaml:"follow_reward"`
	ReferralBonus    int64 `json:"referral_bonus" yaml:"referral_bonus"`
	MaxQuantity      int   `json:"max_quantity" yaml:"max_quantity"`
	// 资料缓存时间，单位秒
	ProfileCacheTTL int `json:"profile_cache_ttl" yaml:"profile_cache_ttl"`
	// 结算锁时间，单位秒
	SettleLockTTL int `json:"settle_lock_ttl" yaml:"settle_lock_ttl"`
}

// DefaultLedger 默认规则
func DefaultLedger() *Ledger {
	l := &Ledger{}
	l.withDefaults()
	return l
}

func (l *Ledger) withDefaults() {
	if l.StartingCoins == 0 {
		l.StartingCoins = 10
	}
	if l.PricePerFollower == 0 {
		l.PricePerFollower = 2
	}
	if l.FollowReward == 0 {
		l.FollowReward = 1
	}
	if l.ReferralBonus == 0 {
		l.ReferralBonus = 5
	}
	if l.MaxQuantity == 0 {
		l.MaxQuantity = 1000
	}
	if l.ProfileCacheTTL == 0 {
		l.ProfileCacheTTL = 600
	}
	if l.SettleLockTTL == 0 {
		l.SettleLockTTL = 30
	}
}

func (l *Ledger) ProfileTTL() time.Duration {
	return time.Duration(l.ProfileCacheTTL) * time.Second
}

func (l *Ledger) SettleLock() time.Duration {
	return time.Duration(l.SettleLockTTL) * time.Second
}

func ProvideLedgerConfig(cfg *Config) *Ledger {
	return cfg.Ledger
}
