package dao

import (
	"FollowCoins/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowActionDAO struct {
	Repo[models.FollowAction]
}

func NewFollowActionDAO(db *gorm.DB) *FollowActionDAO {
	return &FollowActionDAO{
		Repo: NewRepo[models.FollowAction](db),
	}
}

func (d *FollowActionDAO) WithTx(tx *gorm.DB) *FollowActionDAO {
	return &FollowActionDAO{Repo: d.Repo.WithDB(tx)}
}

// IsSettled follower 是否已因关注 target 获得过奖励
func (d *FollowActionDAO) IsSettled(ctx context.Context, followerID, targetID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "follower_id = ? AND target_id = ?", followerID, targetID)
}

// CreateIgnore 唯一键冲突时忽略，返回实际插入行数
func (d *FollowActionDAO) CreateIgnore(ctx context.Context, action *models.FollowAction) (int64, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(action)
	return res.RowsAffected, res.Error
}

// ListByOrder 订单带来的关注者，按时间倒序
func (d *FollowActionDAO) ListByOrder(ctx context.Context, orderID int64) ([]*models.FollowAction, error) {
	var actions []*models.FollowAction
	err := d.Db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("action_at DESC").Order("id DESC").
		Find(&actions).Error
	return actions, err
}
