package models

// AutoMigrateModels 需要迁移的表
func AutoMigrateModels() []any {
	return []any{
		&User{},
		&UserStats{},
		&FollowOrder{},
		&FollowAction{},
		&CoinLog{},
	}
}
