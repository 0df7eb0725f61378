package cache

import (
	"FollowCoins/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type ProfileStorage struct {
	redis *redis.Client
}

func NewProfileStorage(rds *redis.Client) *ProfileStorage {
	return &ProfileStorage{rds}
}

// GetByUsername 未命中返回 nil
func (p *ProfileStorage) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return p.get(ctx, p.nameKey(username))
}

// GetByFID 未命中返回 nil
func (p *ProfileStorage) GetByFID(ctx context.Context, fid int64) (*models.User, error) {
	return p.get(ctx, p.fidKey(fid))
}

// Set 同时写入用户名和 fid 两个索引
func (p *ProfileStorage) Set(ctx context.Context, user *models.User, ttl time.Duration) error {
	val, err := json.Marshal(user)
	if err != nil {
		return err
	}

	_, err = p.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, p.nameKey(user.Username), val, ttl)
		pipe.Set(ctx, p.fidKey(user.FID), val, ttl)
		return nil
	})
	return err
}

func (p *ProfileStorage) get(ctx context.Context, key string) (*models.User, error) {
	val, err := p.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *ProfileStorage) nameKey(username string) string {
	return fmt.Sprintf("profile:name:%s", strings.ToLower(username))
}

func (p *ProfileStorage) fidKey(fid int64) string {
	return fmt.Sprintf("profile:fid:%d", fid)
}
