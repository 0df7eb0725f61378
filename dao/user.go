package dao

import (
	"FollowCoins/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		Repo: NewRepo[models.User](db),
	}
}

func (u *UserDAO) WithTx(tx *gorm.DB) *UserDAO {
	return &UserDAO{Repo: u.Repo.WithDB(tx)}
}

// Upsert 按 fid 写入，已存在时覆盖资料，保留创建时间
func (u *UserDAO) Upsert(ctx context.Context, user *models.User) error {
	return u.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fid"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "display_name", "pfp_url", "updated_at"}),
		}).
		Create(user).Error
}

// FindByFID 不存在返回 nil
func (u *UserDAO) FindByFID(ctx context.Context, fid int64) (*models.User, error) {
	user, err := u.Repo.FindByWhere(ctx, "fid = ?", fid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

// FindByFIDs 批量查询，返回 fid -> user
func (u *UserDAO) FindByFIDs(ctx context.Context, fids []int64) (map[int64]*models.User, error) {
	out := make(map[int64]*models.User, len(fids))
	if len(fids) == 0 {
		return out, nil
	}

	var users []*models.User
	if err := u.Db.WithContext(ctx).Where("fid IN ?", fids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		out[user.FID] = user
	}
	return out, nil
}
