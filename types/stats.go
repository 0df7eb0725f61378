package types

type UserStats struct {
	UserID            int64  `json:"user_id"`
	Coins             int64  `json:"coins"`
	FollowsGiven      int64  `json:"follows_given"`
	FollowersReceived int64  `json:"followers_received"`
	Referrals         int64  `json:"referrals"`
	LastUpdated       string `json:"last_updated"`
}

// ApplyReferralReq fid 与邀请码二选一
type ApplyReferralReq struct {
	ReferrerFID int64  `json:"referrer_fid"`
	Code        string `json:"code"`
}

// CoinRecord 单条金币流水
type CoinRecord struct {
	ID         uint64 `json:"id"`
	Amount     int64  `json:"amount"`  // 正数为收入，负数为支出
	Balance    int64  `json:"balance"` // 变动后的余额快照
	ChangeType string `json:"change_type"`
	SourceID   string `json:"source_id"`
	Remark     string `json:"remark"`
	CreatedAt  string `json:"created_at"`
}

type ListCoinLogsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=income expense"`
	Cursor uint64 `form:"cursor"`
	Limit  int    `form:"limit,default=20" binding:"max=100"`
}

type ListCoinLogsResp struct {
	Records    []*CoinRecord `json:"records"`
	NextCursor uint64        `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}
