package types

type CreateOrderReq struct {
	ProfileRef string `json:"profile_ref" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// FollowOrder 订单详情，id 为 snowflake，以字符串返回
type FollowOrder struct {
	ID               int64  `json:"id,string"`
	RequesterID      int64  `json:"requester_id"`
	TargetID         int64  `json:"target_id"`
	Username         string `json:"username"`
	DisplayName      string `json:"display_name"`
	PfpURL           string `json:"pfp_url"`
	Quantity         int    `json:"quantity"`
	Cost             int64  `json:"cost"`
	RemainingFollows int    `json:"remaining_follows"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

type CreateOrderResult struct {
	Order   *FollowOrder `json:"order"`
	Balance int64        `json:"balance"` // 下单后余额
}

type ListPendingOrdersReq struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

type ListMyOrdersReq struct {
	Cursor int64 `form:"cursor"`
	Limit  int   `form:"limit,default=20" binding:"max=100"`
}

type ListOrdersResp struct {
	Orders     []*FollowOrder `json:"orders"`
	NextCursor int64          `json:"next_cursor,string"`
	HasMore    bool           `json:"has_more"`
}

// OrderFollower 通过订单关注目标的用户
type OrderFollower struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
	CoinsEarned int64  `json:"coins_earned"`
	ActionAt    string `json:"action_at"`
}
