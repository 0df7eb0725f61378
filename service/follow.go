package service

import (
	"FollowCoins/config"
	"FollowCoins/dao"
	"FollowCoins/models"
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/metrics"
	"FollowCoins/pkg/neynar"
	"FollowCoins/pkg/rocketmq"
	"FollowCoins/types"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	SettleFollow(ctx context.Context, followerID int64, signerUUID string, orderID int64) (*types.SettleResult, error)
}

type FollowService struct {
	Config    *config.Config
	DB        *gorm.DB
	Graph     SocialGraph
	Guard     SettleGuard
	Stats     *StatsService
	OrderDAO  *dao.FollowOrderDAO
	ActionDAO *dao.FollowActionDAO
	Events    rocketmq.Publisher
}

// SettleFollow follower 关注订单目标并获得奖励，同一目标只奖励一次
func (s *FollowService) SettleFollow(ctx context.Context, followerID int64, signerUUID string, orderID int64) (*types.SettleResult, error) {
	if followerID <= 0 {
		return nil, ValidationError("invalid follower")
	}

	order, err := s.OrderDAO.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, NotFoundError("order not found")
	}

	// 不能关注自己，也不调用上游
	if followerID == order.TargetID {
		return nil, ValidationError("cannot follow yourself")
	}

	settled, err := s.ActionDAO.IsSettled(ctx, followerID, order.TargetID)
	if err != nil {
		return nil, fmt.Errorf("check follow action: %w", err)
	}
	if settled {
		return s.alreadySettled(ctx, followerID, order)
	}

	if order.Status == models.OrderStatusComplete {
		return nil, ConflictError("order already fulfilled")
	}

	signer := signerUUID
	if signer == "" {
		signer = s.Config.Neynar.DefaultSignerUUID
	}
	if signer == "" {
		return nil, UpstreamError("signer not configured", nil)
	}

	if s.Guard != nil {
		ok, err := s.Guard.Acquire(ctx, followerID, order.TargetID, s.Config.Ledger.SettleLock())
		if err != nil {
			log.L.Warn("settle lock unavailable", zap.Int64("follower_id", followerID), zap.Error(err))
		} else if !ok {
			return nil, ConflictError("settlement in progress")
		} else {
			defer func() {
				if err := s.Guard.Release(context.WithoutCancel(ctx), followerID, order.TargetID); err != nil {
					log.L.Warn("settle lock release failed", zap.Error(err))
				}
			}()
		}
	}

	// 上游失败不改动任何状态，已关注视为成功
	if err := s.Graph.Follow(ctx, signer, order.TargetID); err != nil && !errors.Is(err, neynar.ErrAlreadyFollowing) {
		metrics.UpstreamErrors.WithLabelValues("follow").Inc()
		return nil, UpstreamError("follow failed", err)
	}

	reward := s.Config.Ledger.FollowReward
	var (
		lostRace  bool
		decreased bool
		balance   int64
		current   *models.FollowOrder
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.ActionDAO.WithTx(tx).CreateIgnore(ctx, &models.FollowAction{
			FollowerID:  followerID,
			TargetID:    order.TargetID,
			OrderID:     order.ID,
			CoinsEarned: reward,
			ActionAt:    time.Now(),
		})
		if err != nil {
			return fmt.Errorf("create follow action: %w", err)
		}
		if rows == 0 {
			lostRace = true
			return nil
		}

		stats, err := s.Stats.applyTx(ctx, tx, followerID, dao.StatsDelta{Coins: reward, FollowsGiven: 1}, &models.CoinLog{
			ChangeType: models.CoinChangeFollowReward,
			SourceID:   strconv.FormatInt(order.ID, 10),
			Remark:     fmt.Sprintf("followed @%s", order.Username),
		})
		if err != nil {
			return err
		}
		balance = stats.Coins

		if _, err := s.Stats.applyTx(ctx, tx, order.TargetID, dao.StatsDelta{FollowersReceived: 1}, nil); err != nil {
			return err
		}

		orders := s.OrderDAO.WithTx(tx)
		n, err := orders.DecrRemaining(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("decrement remaining: %w", err)
		}
		decreased = n > 0

		current, err = orders.GetByID(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if lostRace {
		return s.alreadySettled(ctx, followerID, order)
	}
	if current == nil {
		current = order
	}

	metrics.FollowsSettled.WithLabelValues("credited").Inc()
	log.L.Info("follow settled",
		zap.Int64("order_id", order.ID),
		zap.Int64("follower_id", followerID),
		zap.Int64("target_id", order.TargetID),
		zap.Int("remaining", current.RemainingFollows),
	)
	publish(ctx, s.Events, rocketmq.TagFollowSettled, order.ID, &FollowSettledEvent{
		OrderID:          order.ID,
		FollowerID:       followerID,
		TargetID:         order.TargetID,
		CoinsEarned:      reward,
		RemainingFollows: current.RemainingFollows,
	})
	complete := current.Status == models.OrderStatusComplete
	if decreased && complete {
		publish(ctx, s.Events, rocketmq.TagOrderCompleted, order.ID, &OrderCompletedEvent{
			OrderID:  order.ID,
			TargetID: order.TargetID,
		})
	}

	return &types.SettleResult{
		OrderID:          order.ID,
		RemainingFollows: current.RemainingFollows,
		CoinsEarned:      reward,
		Coins:            balance,
		OrderComplete:    complete,
	}, nil
}

// alreadySettled 重复结算按成功返回，不加币
func (s *FollowService) alreadySettled(ctx context.Context, followerID int64, order *models.FollowOrder) (*types.SettleResult, error) {
	metrics.FollowsSettled.WithLabelValues("already_settled").Inc()

	stats, err := s.Stats.GetOrInitStats(ctx, followerID)
	if err != nil {
		return nil, err
	}
	current, err := s.OrderDAO.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}
	if current == nil {
		current = order
	}
	return &types.SettleResult{
		OrderID:          order.ID,
		RemainingFollows: current.RemainingFollows,
		CoinsEarned:      0,
		Coins:            stats.Coins,
		AlreadySettled:   true,
		OrderComplete:    current.Status == models.OrderStatusComplete,
	}, nil
}
