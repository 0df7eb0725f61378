package service

import (
	"FollowCoins/config"
	"FollowCoins/models"
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/metrics"
	"FollowCoins/pkg/neynar"
	"FollowCoins/types"
	"context"
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// 用户名可带 .eth / .base.eth 等以点分隔的后缀
var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*(\.[a-z0-9][a-z0-9-]*)*$`)

const maxUsernameLen = 64

var profileHosts = map[string]bool{
	"farcaster.xyz": true,
	"warpcast.com":  true,
}

// ProfileRef 解析后的资料引用，Username 与 FID 二选一
type ProfileRef struct {
	Username string
	FID      int64
}

// ParseProfileRef 支持用户名、@handle、farcaster.xyz / warpcast.com 主页链接以及数字 fid
func ParseProfileRef(ref string) (ProfileRef, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ProfileRef{}, ValidationError("invalid profile reference")
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		u, err := url.Parse(ref)
		if err != nil {
			return ProfileRef{}, ValidationError("invalid profile reference")
		}
		host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		if !profileHosts[host] {
			return ProfileRef{}, ValidationError("invalid profile reference")
		}
		path := strings.Trim(u.Path, "/")
		if path == "" || strings.Contains(path, "/") {
			return ProfileRef{}, ValidationError("invalid profile reference")
		}
		ref = path
	}

	ref = strings.ToLower(strings.TrimPrefix(ref, "@"))

	if fid, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if fid <= 0 {
			return ProfileRef{}, ValidationError("invalid profile reference")
		}
		return ProfileRef{FID: fid}, nil
	}

	if len(ref) > maxUsernameLen || !usernamePattern.MatchString(ref) {
		return ProfileRef{}, ValidationError("invalid profile reference")
	}
	return ProfileRef{Username: ref}, nil
}

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	Resolve(ctx context.Context, ref string) (*types.Profile, error)
	ResolveByID(ctx context.Context, fid int64) (*types.Profile, error)
}

type ProfileService struct {
	Ledger *config.Ledger
	Graph  SocialGraph
	Cache  ProfileCache
}

// Resolve 解析资料引用并查询资料
func (s *ProfileService) Resolve(ctx context.Context, ref string) (*types.Profile, error) {
	parsed, err := ParseProfileRef(ref)
	if err != nil {
		return nil, err
	}
	if parsed.FID > 0 {
		return s.ResolveByID(ctx, parsed.FID)
	}

	if user := s.cached(ctx, func() (*models.User, error) {
		return s.Cache.GetByUsername(ctx, parsed.Username)
	}); user != nil {
		return toProfile(user), nil
	}

	u, err := s.Graph.UserByUsername(ctx, parsed.Username)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return s.remember(ctx, u), nil
}

// ResolveByID 按 fid 查询资料
func (s *ProfileService) ResolveByID(ctx context.Context, fid int64) (*types.Profile, error) {
	if fid <= 0 {
		return nil, ValidationError("invalid profile reference")
	}

	if user := s.cached(ctx, func() (*models.User, error) {
		return s.Cache.GetByFID(ctx, fid)
	}); user != nil {
		return toProfile(user), nil
	}

	u, err := s.Graph.UserByFID(ctx, fid)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return s.remember(ctx, u), nil
}

// 缓存异常只记录日志
func (s *ProfileService) cached(ctx context.Context, get func() (*models.User, error)) *models.User {
	if s.Cache == nil {
		return nil
	}
	user, err := get()
	if err != nil {
		log.L.Warn("profile cache get failed", zap.Error(err))
		return nil
	}
	return user
}

func (s *ProfileService) remember(ctx context.Context, u *neynar.User) *types.Profile {
	user := &models.User{
		FID:         u.FID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		PfpURL:      u.PfpURL,
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, user, s.Ledger.ProfileTTL()); err != nil {
			log.L.Warn("profile cache set failed", zap.Int64("fid", u.FID), zap.Error(err))
		}
	}
	return toProfile(user)
}

func (s *ProfileService) lookupError(err error) error {
	if errors.Is(err, neynar.ErrNotFound) {
		return NotFoundError("profile not found")
	}
	metrics.UpstreamErrors.WithLabelValues("lookup_user").Inc()
	return UpstreamError("profile lookup failed", err)
}

func toProfile(u *models.User) *types.Profile {
	return &types.Profile{
		FID:         u.FID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		PfpURL:      u.PfpURL,
	}
}
