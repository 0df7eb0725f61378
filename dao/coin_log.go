package dao

import (
	"FollowCoins/models"
	"context"

	"gorm.io/gorm"
)

type CoinLogDAO struct {
	Repo[models.CoinLog]
}

func NewCoinLogDAO(db *gorm.DB) *CoinLogDAO {
	return &CoinLogDAO{
		Repo: NewRepo[models.CoinLog](db),
	}
}

func (c *CoinLogDAO) WithTx(tx *gorm.DB) *CoinLogDAO {
	return &CoinLogDAO{Repo: c.Repo.WithDB(tx)}
}

// ListRecords 分页筛选查询，action: income / expense / 其它为全部
func (c *CoinLogDAO) ListRecords(ctx context.Context, userID int64, action string, cursor uint64, limit int) ([]*models.CoinLog, error) {
	var logs []*models.CoinLog
	query := c.Db.WithContext(ctx).Where("user_id = ?", userID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
