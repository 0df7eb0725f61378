package service

import (
	"FollowCoins/models"
	"FollowCoins/types"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func toStats(s *models.UserStats) *types.UserStats {
	return &types.UserStats{
		UserID:            s.UserID,
		Coins:             s.Coins,
		FollowsGiven:      s.FollowsGiven,
		FollowersReceived: s.FollowersReceived,
		Referrals:         s.Referrals,
		LastUpdated:       formatTime(s.LastUpdated),
	}
}

func toOrder(o *models.FollowOrder) *types.FollowOrder {
	return &types.FollowOrder{
		ID:               o.ID,
		RequesterID:      o.RequesterID,
		TargetID:         o.TargetID,
		Username:         o.Username,
		DisplayName:      o.DisplayName,
		PfpURL:           o.PfpURL,
		Quantity:         o.Quantity,
		Cost:             o.Cost,
		RemainingFollows: o.RemainingFollows,
		Status:           o.Status,
		CreatedAt:        formatTime(o.CreatedAt),
	}
}

func toOrders(orders []*models.FollowOrder) []*types.FollowOrder {
	out := make([]*types.FollowOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toCoinRecord(l *models.CoinLog) *types.CoinRecord {
	return &types.CoinRecord{
		ID:         l.ID,
		Amount:     l.Amount,
		Balance:    l.Balance,
		ChangeType: l.ChangeType,
		SourceID:   l.SourceID,
		Remark:     l.Remark,
		CreatedAt:  formatTime(l.CreatedAt),
	}
}
