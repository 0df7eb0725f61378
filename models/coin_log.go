package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CoinChangeOrderDebit    = "order_debit"
	CoinChangeFollowReward  = "follow_reward"
	CoinChangeReferralBonus = "referral_bonus"
	CoinChangeAdjustment    = "adjustment"
)

// CoinLog 金币流水
type CoinLog struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	UserID     int64          `gorm:"column:user_id;index:idx_user_id"`
	Amount     int64          `gorm:"column:amount"`  // 变动数额（正负）
	Balance    int64          `gorm:"column:balance"` // 变动后余额
	ChangeType string         `gorm:"column:change_type;size:32"`
	SourceID   string         `gorm:"column:source_id;index:idx_source_id;size:64"`
	Remark     string         `gorm:"column:remark;size:255"`
	Extra      datatypes.JSON `gorm:"column:extra"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (CoinLog) TableName() string {
	return "coin_logs"
}

