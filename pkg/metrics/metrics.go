package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// 下单数
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "follow_coins_orders_created_total",
			Help: "Total number of follow orders created",
		},
	)

	// 关注结算结果 credited / already_settled
	FollowsSettled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_coins_follows_settled_total",
			Help: "Total number of settled follow actions",
		},
		[]string{"result"},
	)

	// 金币流转
	CoinsMoved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_coins_coins_moved_total",
			Help: "Absolute coins moved by change type",
		},
		[]string{"change_type"},
	)

	UpstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_coins_upstream_errors_total",
			Help: "Social graph API failures by operation",
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(OrdersCreated, FollowsSettled, CoinsMoved, UpstreamErrors)
}

// ObserveCoins 记录金币变动绝对值
func ObserveCoins(changeType string, amount int64) {
	if amount < 0 {
		amount = -amount
	}
	CoinsMoved.WithLabelValues(changeType).Add(float64(amount))
}
