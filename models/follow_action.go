package models

import "time"

// FollowAction 已结算的关注，同一 follower/target 只记一次
type FollowAction struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_target,priority:1" json:"follower_id"`
	TargetID    int64     `gorm:"column:target_id;not null;uniqueIndex:uk_follower_target,priority:2" json:"target_id"`
	OrderID     int64     `gorm:"column:order_id;not null;index:idx_order_id" json:"order_id"`
	CoinsEarned int64     `gorm:"column:coins_earned;not null;default:0" json:"coins_earned"`
	ActionAt    time.Time `gorm:"column:action_at;not null" json:"action_at"`
}

func (FollowAction) TableName() string {
	return "follow_actions"
}
