package handler

import (
	"FollowCoins/config"
	"FollowCoins/pkg/context"
	"FollowCoins/pkg/response"
	"FollowCoins/service"
	"FollowCoins/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/login", context.Wrap(u.Login)) // 登录
}

// Login signer 登录
func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "fid 和 signer_uuid 不能为空")
	}

	resp, err := u.UserService.Login(c.Request.Context(), req.FID, req.SignerUUID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
