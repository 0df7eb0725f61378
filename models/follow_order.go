package models

import "time"

const (
	OrderStatusPending  = "pending"
	OrderStatusComplete = "complete"
)

// FollowOrder 买粉订单
type FollowOrder struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	RequesterID      int64     `gorm:"column:requester_id;not null;index:idx_requester_id" json:"requester_id"`
	TargetID         int64     `gorm:"column:target_id;not null;index:idx_target_id" json:"target_id"`
	Username         string    `gorm:"column:username;type:varchar(64)" json:"username"` // 下单时的目标资料快照
	DisplayName      string    `gorm:"column:display_name;type:varchar(128)" json:"display_name"`
	PfpURL           string    `gorm:"column:pfp_url;type:varchar(512)" json:"pfp_url"`
	Quantity         int       `gorm:"column:quantity;not null" json:"quantity"`
	Cost             int64     `gorm:"column:cost;not null" json:"cost"`
	RemainingFollows int       `gorm:"column:remaining_follows;not null" json:"remaining_follows"`
	Status           string    `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_status_created,priority:1" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime;index:idx_status_created,priority:2" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FollowOrder) TableName() string {
	return "follow_orders"
}
