package service

import (
	"FollowCoins/config"
	"FollowCoins/dao"
	"FollowCoins/models"
	"FollowCoins/pkg/jwt"
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/metrics"
	"FollowCoins/pkg/neynar"
	"FollowCoins/types"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const dashboardLogLimit = 10

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Login(ctx context.Context, fid int64, signerUUID string) (*types.LoginResp, error)
	Init(ctx context.Context, profile *types.Profile) (*types.UserStats, error)
	Dashboard(ctx context.Context, fid int64) (*types.Dashboard, error)
}

type UserService struct {
	Config   *config.Config
	Graph    SocialGraph
	Profiles IProfileService
	Stats    IStatsService
	UserDAO  *dao.UserDAO
}

// Login 校验 signer 属于该 fid 且已授权，签发访问令牌
func (u *UserService) Login(ctx context.Context, fid int64, signerUUID string) (*types.LoginResp, error) {
	if fid <= 0 || strings.TrimSpace(signerUUID) == "" {
		return nil, ValidationError("fid and signer_uuid are required")
	}

	signer, err := u.Graph.LookupSigner(ctx, signerUUID)
	if err != nil {
		if errors.Is(err, neynar.ErrNotFound) {
			return nil, ValidationError("signer not found")
		}
		metrics.UpstreamErrors.WithLabelValues("lookup_signer").Inc()
		return nil, UpstreamError("signer lookup failed", err)
	}
	if signer.FID != fid {
		return nil, ValidationError("signer does not belong to fid")
	}
	if !signer.Approved() {
		return nil, ValidationError("signer not approved")
	}

	profile, err := u.Profiles.ResolveByID(ctx, fid)
	if err != nil {
		return nil, err
	}

	stats, err := u.Init(ctx, profile)
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken([]byte(u.Config.Jwt.Secret), fid, signerUUID, jwt.TypeAccess, u.Config.Jwt.Expire())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	code, err := u.Stats.ReferralCode(fid)
	if err != nil {
		log.L.Warn("gen referral code failed", zap.Int64("fid", fid), zap.Error(err))
	}

	log.L.Info("user login", zap.Int64("fid", fid), zap.String("username", profile.Username))
	return &types.LoginResp{
		Token:        token,
		ExpiresIn:    u.Config.Jwt.ExpiresTime,
		User:         profile,
		Stats:        stats,
		ReferralCode: code,
	}, nil
}

// Init 登记用户资料并初始化统计
func (u *UserService) Init(ctx context.Context, profile *types.Profile) (*types.UserStats, error) {
	if profile == nil || profile.FID <= 0 || profile.Username == "" {
		return nil, ValidationError("fid and username are required")
	}

	if err := u.UserDAO.Upsert(ctx, profileToUser(profile)); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u.Stats.GetOrInitStats(ctx, profile.FID)
}

// Dashboard 并发拉取资料、统计、最近流水
func (u *UserService) Dashboard(ctx context.Context, fid int64) (*types.Dashboard, error) {
	var (
		user  *models.User
		stats *types.UserStats
		logs  *types.ListCoinLogsResp
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		user, err = u.UserDAO.FindByFID(ctx, fid)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		stats, err = u.Stats.GetOrInitStats(ctx, fid)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		logs, err = u.Stats.ListCoinLogs(ctx, fid, "", 0, dashboardLogLimit)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundError("user not found")
	}

	code, err := u.Stats.ReferralCode(fid)
	if err != nil {
		log.L.Warn("gen referral code failed", zap.Int64("fid", fid), zap.Error(err))
	}

	return &types.Dashboard{
		User:         toProfile(user),
		Stats:        stats,
		RecentLogs:   logs.Records,
		ReferralCode: code,
	}, nil
}
