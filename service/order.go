package service

import (
	"FollowCoins/config"
	"FollowCoins/dao"
	"FollowCoins/models"
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/metrics"
	"FollowCoins/pkg/rocketmq"
	"FollowCoins/pkg/snowflake"
	"FollowCoins/types"
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	CreateOrder(ctx context.Context, requesterID int64, profileRef string, quantity int) (*types.CreateOrderResult, error)
	ListPendingOrders(ctx context.Context, limit int) ([]*types.FollowOrder, error)
	SuggestTargets(ctx context.Context, followerID int64, limit int) ([]*types.FollowOrder, error)
	GetOrder(ctx context.Context, orderID int64) (*types.FollowOrder, error)
	ListMyOrders(ctx context.Context, requesterID int64, cursor int64, limit int) (*types.ListOrdersResp, error)
	ListOrderFollowers(ctx context.Context, orderID int64) ([]*types.OrderFollower, error)
}

type OrderService struct {
	Config    *config.Config
	DB        *gorm.DB
	Profiles  IProfileService
	Stats     *StatsService
	UserDAO   *dao.UserDAO
	OrderDAO  *dao.FollowOrderDAO
	ActionDAO *dao.FollowActionDAO
	Events    rocketmq.Publisher
}

// CreateOrder 扣除金币并创建买粉订单
func (s *OrderService) CreateOrder(ctx context.Context, requesterID int64, profileRef string, quantity int) (*types.CreateOrderResult, error) {
	ledger := s.Config.Ledger
	if requesterID <= 0 {
		return nil, ValidationError("invalid requester")
	}
	if quantity < 1 || quantity > ledger.MaxQuantity {
		return nil, ValidationError(fmt.Sprintf("quantity must be between 1 and %d", ledger.MaxQuantity))
	}

	// 先解析目标，失败直接返回
	target, err := s.Profiles.Resolve(ctx, profileRef)
	if err != nil {
		return nil, err
	}

	cost := int64(quantity) * ledger.PricePerFollower

	stats, err := s.Stats.GetOrInitStats(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if stats.Coins < cost {
		return nil, InsufficientBalanceError()
	}

	requester, err := s.requesterProfile(ctx, requesterID, target)
	if err != nil {
		return nil, err
	}

	order := &models.FollowOrder{
		ID:               snowflake.GenOrderID(),
		RequesterID:      requesterID,
		TargetID:         target.FID,
		Username:         target.Username,
		DisplayName:      target.DisplayName,
		PfpURL:           target.PfpURL,
		Quantity:         quantity,
		Cost:             cost,
		RemainingFollows: quantity,
		Status:           models.OrderStatusPending,
	}

	var balance int64
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.UserDAO.WithTx(tx)
		if err := users.Upsert(ctx, profileToUser(target)); err != nil {
			return fmt.Errorf("upsert target: %w", err)
		}
		if requester != nil && requester.FID != target.FID {
			if err := users.Upsert(ctx, profileToUser(requester)); err != nil {
				return fmt.Errorf("upsert requester: %w", err)
			}
		}

		// 余额在事务内条件扣减，并发下不足时返回 0 行
		after, err := s.Stats.applyTx(ctx, tx, requesterID, dao.StatsDelta{Coins: -cost}, &models.CoinLog{
			ChangeType: models.CoinChangeOrderDebit,
			SourceID:   strconv.FormatInt(order.ID, 10),
			Remark:     fmt.Sprintf("order %d followers for @%s", quantity, target.Username),
		})
		if err != nil {
			return err
		}
		balance = after.Coins

		if err := s.OrderDAO.WithTx(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	log.L.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("requester_id", requesterID),
		zap.Int64("target_id", target.FID),
		zap.Int("quantity", quantity),
		zap.Int64("cost", cost),
	)
	publish(ctx, s.Events, rocketmq.TagOrderCreated, order.ID, &OrderCreatedEvent{
		OrderID:     order.ID,
		RequesterID: requesterID,
		TargetID:    target.FID,
		Quantity:    quantity,
		Cost:        cost,
	})

	return &types.CreateOrderResult{
		Order:   toOrder(order),
		Balance: balance,
	}, nil
}

// requesterProfile 本地没有下单人资料时从上游补齐，失败不影响下单
func (s *OrderService) requesterProfile(ctx context.Context, requesterID int64, target *types.Profile) (*types.Profile, error) {
	if requesterID == target.FID {
		return target, nil
	}
	user, err := s.UserDAO.FindByFID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("find requester: %w", err)
	}
	if user != nil {
		return nil, nil
	}
	profile, err := s.Profiles.ResolveByID(ctx, requesterID)
	if err != nil {
		log.L.Warn("resolve requester failed", zap.Int64("requester_id", requesterID), zap.Error(err))
		return nil, nil
	}
	return profile, nil
}

// ListPendingOrders 待完成订单，先进先出
func (s *OrderService) ListPendingOrders(ctx context.Context, limit int) ([]*types.FollowOrder, error) {
	orders, err := s.OrderDAO.ListPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	return toOrders(orders), nil
}

// SuggestTargets 推荐给 follower 的待关注订单
func (s *OrderService) SuggestTargets(ctx context.Context, followerID int64, limit int) ([]*types.FollowOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	orders, err := s.OrderDAO.ListSuggested(ctx, followerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list suggested orders: %w", err)
	}
	return toOrders(orders), nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*types.FollowOrder, error) {
	order, err := s.OrderDAO.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, NotFoundError("order not found")
	}
	return toOrder(order), nil
}

// ListMyOrders 我下的订单，id 游标倒序
func (s *OrderService) ListMyOrders(ctx context.Context, requesterID int64, cursor int64, limit int) (*types.ListOrdersResp, error) {
	if limit <= 0 {
		limit = 20
	}
	orders, err := s.OrderDAO.ListByRequester(ctx, requesterID, cursor, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list my orders: %w", err)
	}

	resp := &types.ListOrdersResp{}
	if len(orders) > limit {
		resp.HasMore = true
		orders = orders[:limit]
	}
	resp.Orders = toOrders(orders)
	if len(orders) > 0 {
		resp.NextCursor = orders[len(orders)-1].ID
	}
	return resp, nil
}

// ListOrderFollowers 通过该订单关注目标的用户
func (s *OrderService) ListOrderFollowers(ctx context.Context, orderID int64) ([]*types.OrderFollower, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	actions, err := s.ActionDAO.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order followers: %w", err)
	}

	fids := make([]int64, 0, len(actions))
	for _, a := range actions {
		fids = append(fids, a.FollowerID)
	}
	users, err := s.UserDAO.FindByFIDs(ctx, fids)
	if err != nil {
		return nil, fmt.Errorf("find followers: %w", err)
	}

	out := make([]*types.OrderFollower, 0, len(actions))
	for _, a := range actions {
		item := &types.OrderFollower{
			FID:         a.FollowerID,
			CoinsEarned: a.CoinsEarned,
			ActionAt:    formatTime(a.ActionAt),
		}
		if u, ok := users[a.FollowerID]; ok {
			item.Username = u.Username
			item.DisplayName = u.DisplayName
			item.PfpURL = u.PfpURL
		}
		out = append(out, item)
	}
	return out, nil
}

func profileToUser(p *types.Profile) *models.User {
	return &models.User{
		FID:         p.FID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		PfpURL:      p.PfpURL,
	}
}
