package types

type SettleFollowReq struct {
	OrderID int64 `json:"order_id,string" binding:"required"`
}

// SettleResult 关注结算结果
type SettleResult struct {
	OrderID          int64 `json:"order_id,string"`
	RemainingFollows int   `json:"remaining_follows"`
	CoinsEarned      int64 `json:"coins_earned"`
	Coins            int64 `json:"coins"`           // 结算后余额
	AlreadySettled   bool  `json:"already_settled"` // 之前已结算过，本次不加币
	OrderComplete    bool  `json:"order_complete"`
}
