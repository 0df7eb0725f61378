package service

import (
	"FollowCoins/config"
	"FollowCoins/dao"
	"FollowCoins/models"
	"FollowCoins/pkg/metrics"
	"FollowCoins/pkg/utils"
	"FollowCoins/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	GetOrInitStats(ctx context.Context, userID int64) (*types.UserStats, error)
	ApplyDelta(ctx context.Context, userID int64, delta dao.StatsDelta) (*types.UserStats, error)
	ApplyReferral(ctx context.Context, referrerID, refereeID int64) (*types.UserStats, error)
	ApplyReferralCode(ctx context.Context, code string, refereeID int64) (*types.UserStats, error)
	ReferralCode(fid int64) (string, error)
	ListCoinLogs(ctx context.Context, userID int64, action string, cursor uint64, limit int) (*types.ListCoinLogsResp, error)
}

type StatsService struct {
	Config     *config.Config
	DB         *gorm.DB
	StatsDAO   *dao.UserStatsDAO
	CoinLogDAO *dao.CoinLogDAO
}

// GetOrInitStats 获取统计，不存在时以初始金币创建
func (s *StatsService) GetOrInitStats(ctx context.Context, userID int64) (*types.UserStats, error) {
	if userID <= 0 {
		return nil, ValidationError("invalid user id")
	}
	stats, err := s.StatsDAO.GetOrCreate(ctx, userID, s.Config.Ledger.StartingCoins)
	if err != nil {
		return nil, fmt.Errorf("get or init stats: %w", err)
	}
	return toStats(stats), nil
}

// ApplyDelta 后台调整，任一字段不能变为负数
func (s *StatsService) ApplyDelta(ctx context.Context, userID int64, delta dao.StatsDelta) (*types.UserStats, error) {
	if userID <= 0 {
		return nil, ValidationError("invalid user id")
	}

	var stats *models.UserStats
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		stats, err = s.applyTx(ctx, tx, userID, delta, &models.CoinLog{
			ChangeType: models.CoinChangeAdjustment,
			Remark:     "manual adjustment",
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toStats(stats), nil
}

// ApplyReferral 邀请奖励，不限次数，流水记录被邀请人
func (s *StatsService) ApplyReferral(ctx context.Context, referrerID, refereeID int64) (*types.UserStats, error) {
	if referrerID <= 0 || refereeID <= 0 {
		return nil, ValidationError("invalid referrer")
	}
	if referrerID == refereeID {
		return nil, ValidationError("cannot refer yourself")
	}

	extra, err := json.Marshal(map[string]int64{"referee_id": refereeID})
	if err != nil {
		return nil, err
	}

	bonus := s.Config.Ledger.ReferralBonus
	var stats *models.UserStats
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		stats, err = s.applyTx(ctx, tx, referrerID, dao.StatsDelta{Coins: bonus, Referrals: 1}, &models.CoinLog{
			ChangeType: models.CoinChangeReferralBonus,
			SourceID:   strconv.FormatInt(refereeID, 10),
			Remark:     "referral bonus",
			Extra:      datatypes.JSON(extra),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toStats(stats), nil
}

// ApplyReferralCode 通过邀请码发放邀请奖励
func (s *StatsService) ApplyReferralCode(ctx context.Context, code string, refereeID int64) (*types.UserStats, error) {
	fid, err := utils.ParseReferralCode(s.Config.App.ReferralSalt, code)
	if err != nil {
		return nil, ValidationError("invalid referral code")
	}
	return s.ApplyReferral(ctx, fid, refereeID)
}

func (s *StatsService) ReferralCode(fid int64) (string, error) {
	return utils.GenReferralCode(s.Config.App.ReferralSalt, fid)
}

// ListCoinLogs 金币流水，id 游标倒序
func (s *StatsService) ListCoinLogs(ctx context.Context, userID int64, action string, cursor uint64, limit int) (*types.ListCoinLogsResp, error) {
	if limit <= 0 {
		limit = 20
	}
	logs, err := s.CoinLogDAO.ListRecords(ctx, userID, action, cursor, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list coin logs: %w", err)
	}

	resp := &types.ListCoinLogsResp{
		Records: make([]*types.CoinRecord, 0, len(logs)),
	}
	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
	}
	for _, l := range logs {
		resp.Records = append(resp.Records, toCoinRecord(l))
	}
	if len(logs) > 0 {
		resp.NextCursor = logs[len(logs)-1].ID
	}
	return resp, nil
}

// applyTx 在事务内确保统计存在、应用增量并在金币变动时写流水
func (s *StatsService) applyTx(ctx context.Context, tx *gorm.DB, userID int64, delta dao.StatsDelta, entry *models.CoinLog) (*models.UserStats, error) {
	statsDAO := s.StatsDAO.WithTx(tx)
	if err := statsDAO.Ensure(ctx, userID, s.Config.Ledger.StartingCoins); err != nil {
		return nil, fmt.Errorf("ensure stats: %w", err)
	}

	rows, err := statsDAO.Apply(ctx, userID, delta)
	if err != nil {
		return nil, fmt.Errorf("apply stats delta: %w", err)
	}

	stats, err := statsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	if stats == nil {
		return nil, errors.New("stats row missing after ensure")
	}

	if rows == 0 && !delta.IsZero() {
		if delta.Coins < 0 && stats.Coins < -delta.Coins {
			return nil, InsufficientBalanceError()
		}
		return nil, ValidationError("stats counter cannot go below zero")
	}

	if entry != nil && delta.Coins != 0 {
		entry.UserID = userID
		entry.Amount = delta.Coins
		entry.Balance = stats.Coins
		if entry.SourceID == "" {
			entry.SourceID = strconv.FormatInt(userID, 10)
		}
		if err := s.CoinLogDAO.WithTx(tx).Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("create coin log: %w", err)
		}
		metrics.ObserveCoins(entry.ChangeType, delta.Coins)
	}
	return stats, nil
}
