package dao

import (
	"FollowCoins/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type FollowOrderDAO struct {
	Repo[models.FollowOrder]
}

func NewFollowOrderDAO(db *gorm.DB) *FollowOrderDAO {
	return &FollowOrderDAO{
		Repo: NewRepo[models.FollowOrder](db),
	}
}

func (d *FollowOrderDAO) WithTx(tx *gorm.DB) *FollowOrderDAO {
	return &FollowOrderDAO{Repo: d.Repo.WithDB(tx)}
}

// GetByID 不存在返回 nil
func (d *FollowOrderDAO) GetByID(ctx context.Context, id int64) (*models.FollowOrder, error) {
	order, err := d.Repo.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return order, err
}

// ListPending 待完成订单，按创建时间先进先出；limit <= 0 不限制
func (d *FollowOrderDAO) ListPending(ctx context.Context, limit int) ([]*models.FollowOrder, error) {
	var orders []*models.FollowOrder
	query := d.Db.WithContext(ctx).
		Where("status = ?", models.OrderStatusPending).
		Order("created_at ASC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// ListSuggested 可供 follower 关注的待完成订单，排除自己和已结算过的目标
func (d *FollowOrderDAO) ListSuggested(ctx context.Context, followerID int64, limit int) ([]*models.FollowOrder, error) {
	settled := d.Db.Model(&models.FollowAction{}).
		Select("target_id").
		Where("follower_id = ?", followerID)

	var orders []*models.FollowOrder
	query := d.Db.WithContext(ctx).
		Where("status = ?", models.OrderStatusPending).
		Where("target_id <> ?", followerID).
		Where("target_id NOT IN (?)", settled).
		Order("created_at ASC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// ListByRequester 我的订单，id 游标倒序
func (d *FollowOrderDAO) ListByRequester(ctx context.Context, requesterID int64, cursor int64, limit int) ([]*models.FollowOrder, error) {
	var orders []*models.FollowOrder
	query := d.Db.WithContext(ctx).Where("requester_id = ?", requesterID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// DecrRemaining 剩余数减一，减到 0 时同一语句内标记完成；已为 0 时返回 0
func (d *FollowOrderDAO) DecrRemaining(ctx context.Context, id int64) (int64, error) {
	// status 必须写在 remaining_follows 之前，MySQL 按顺序求值
	res := d.Db.WithContext(ctx).Exec(`
		UPDATE follow_orders SET
			status = CASE WHEN remaining_follows <= 1 THEN ? ELSE status END,
			remaining_follows = remaining_follows - 1,
			updated_at = ?
		WHERE id = ? AND remaining_follows > 0
	`, models.OrderStatusComplete, time.Now(), id)
	return res.RowsAffected, res.Error
}
