package types

type LoginReq struct {
	FID        int64  `json:"fid" binding:"required,gt=0"`
	SignerUUID string `json:"signer_uuid" binding:"required"`
}

type LoginResp struct {
	Token        string     `json:"token"`
	ExpiresIn    int64      `json:"expires_in"`
	User         *Profile   `json:"user"`
	Stats        *UserStats `json:"stats"`
	ReferralCode string     `json:"referral_code"`
}

// InitUserReq 客户端已拿到资料时直接登记
type InitUserReq struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
}

type Dashboard struct {
	User         *Profile      `json:"user"`
	Stats        *UserStats    `json:"stats"`
	RecentLogs   []*CoinRecord `json:"recent_logs"`
	ReferralCode string        `json:"referral_code"`
}
