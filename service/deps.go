package service

import (
	"FollowCoins/models"
	"FollowCoins/pkg/neynar"
	"context"
	"time"
)

// SocialGraph 社交图谱接口，由 neynar.Client 实现
type SocialGraph interface {
	UserByUsername(ctx context.Context, username string) (*neynar.User, error)
	UserByFID(ctx context.Context, fid int64) (*neynar.User, error)
	Follow(ctx context.Context, signerUUID string, targetFID int64) error
	LookupSigner(ctx context.Context, signerUUID string) (*neynar.Signer, error)
}

// ProfileCache 资料缓存，由 cache.ProfileStorage 实现
type ProfileCache interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByFID(ctx context.Context, fid int64) (*models.User, error)
	Set(ctx context.Context, user *models.User, ttl time.Duration) error
}

// SettleGuard 结算互斥，由 cache.SettleLock 实现
type SettleGuard interface {
	Acquire(ctx context.Context, followerID, targetID int64, ttl time.Duration) (bool, error)
	Release(ctx context.Context, followerID, targetID int64) error
}
