package models

import (
	"time"
)

type UserStats struct {
	ID                uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID            int64     `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Coins             int64     `gorm:"column:coins;not null;default:0" json:"coins"`
	FollowsGiven      int64     `gorm:"column:follows_given;not null;default:0" json:"follows_given"`
	FollowersReceived int64     `gorm:"column:followers_received;not null;default:0" json:"followers_received"`
	Referrals         int64     `gorm:"column:referrals;not null;default:0" json:"referrals"`
	LastUpdated       time.Time `gorm:"column:last_updated;not null" json:"last_updated"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
