package service

import (
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/rocketmq"
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type OrderCreatedEvent struct {
	OrderID     int64 `json:"order_id,string"`
	RequesterID int64 `json:"requester_id"`
	TargetID    int64 `json:"target_id"`
	Quantity    int   `json:"quantity"`
	Cost        int64 `json:"cost"`
}

type FollowSettledEvent struct {
	OrderID          int64 `json:"order_id,string"`
	FollowerID       int64 `json:"follower_id"`
	TargetID         int64 `json:"target_id"`
	CoinsEarned      int64 `json:"coins_earned"`
	RemainingFollows int   `json:"remaining_follows"`
}

type OrderCompletedEvent struct {
	OrderID  int64 `json:"order_id,string"`
	TargetID int64 `json:"target_id"`
}

// publish 事务提交后投递，失败只记录日志
func publish(ctx context.Context, p rocketmq.Publisher, tag string, orderID int64, payload any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()

	if err := p.Publish(ctx, tag, strconv.FormatInt(orderID, 10), payload); err != nil {
		log.L.Warn("publish event failed", zap.String("tag", tag), zap.Int64("order_id", orderID), zap.Error(err))
	}
}
