package models

import "time"

// User farcaster 用户，以 fid 为主键
type User struct {
	FID         int64     `gorm:"column:fid;primaryKey;autoIncrement:false" json:"fid"`
	Username    string    `gorm:"column:username;type:varchar(64);not null;index:idx_username" json:"username"`
	DisplayName string    `gorm:"column:display_name;type:varchar(128)" json:"display_name"`
	PfpURL      string    `gorm:"column:pfp_url;type:varchar(512)" json:"pfp_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
