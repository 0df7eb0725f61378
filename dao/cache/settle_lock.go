package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SettleLock 同一 follower/target 的结算互斥
type SettleLock struct {
	redis *redis.Client
}

func NewSettleLock(rds *redis.Client) *SettleLock {
	return &SettleLock{rds}
}

// Acquire 获取锁，已被占用返回 false
func (s *SettleLock) Acquire(ctx context.Context, followerID, targetID int64, ttl time.Duration) (bool, error) {
	return s.redis.SetNX(ctx, s.name(followerID, targetID), time.Now().Unix(), ttl).Result()
}

func (s *SettleLock) Release(ctx context.Context, followerID, targetID int64) error {
	return s.redis.Del(ctx, s.name(followerID, targetID)).Err()
}

func (s *SettleLock) name(followerID, targetID int64) string {
	return fmt.Sprintf("settle:lock:%d:%d", followerID, targetID)
}
