package types

// Profile 社交平台用户资料
type Profile struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
}

type ResolveProfileReq struct {
	ProfileRef string `json:"profile_ref" binding:"required"` // 用户名、@handle、主页链接或 fid
}
