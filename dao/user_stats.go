package dao

import (
	"FollowCoins/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsDelta 统计增量，可为负数
type StatsDelta struct {
	Coins             int64
	FollowsGiven      int64
	FollowersReceived int64
	Referrals         int64
}

func (d StatsDelta) IsZero() bool {
	return d == StatsDelta{}
}

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

func (d *UserStatsDAO) WithTx(tx *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{Repo: d.Repo.WithDB(tx)}
}

// Ensure 不存在时以初始金币创建，已存在不做修改
func (d *UserStatsDAO) Ensure(ctx context.Context, userID int64, startingCoins int64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&models.UserStats{
			UserID:      userID,
			Coins:       startingCoins,
			LastUpdated: now,
			CreatedAt:   now,
		}).Error
}

// GetOrCreate 获取或创建用户统计
func (d *UserStatsDAO) GetOrCreate(ctx context.Context, userID int64, startingCoins int64) (*models.UserStats, error) {
	if err := d.Ensure(ctx, userID, startingCoins); err != nil {
		return nil, err
	}
	return d.Repo.FindByWhere(ctx, "user_id = ?", userID)
}

// GetByUserID 根据用户ID获取统计，不存在返回 nil
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	stats, err := d.Repo.FindByWhere(ctx, "user_id = ?", userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return stats, err
}

// Apply 原子地应用增量，任一字段会变为负数时不更新并返回 0
func (d *UserStatsDAO) Apply(ctx context.Context, userID int64, delta StatsDelta) (int64, error) {
	query := d.Model(ctx).Where("user_id = ?", userID)
	updates := map[string]any{
		"last_updated": time.Now(),
	}

	for _, f := range []struct {
		column string
		value  int64
	}{
		{"coins", delta.Coins},
		{"follows_given", delta.FollowsGiven},
		{"followers_received", delta.FollowersReceived},
		{"referrals", delta.Referrals},
	} {
		if f.value == 0 {
			continue
		}
		if f.value < 0 {
			query = query.Where(f.column+" >= ?", -f.value)
		}
		updates[f.column] = gorm.Expr(f.column+" + ?", f.value)
	}

	res := query.UpdateColumns(updates)
	return res.RowsAffected, res.Error
}
