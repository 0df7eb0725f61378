package handler

import (
	"FollowCoins/config"
	"FollowCoins/middleware"
	"FollowCoins/pkg/context"
	"FollowCoins/pkg/response"
	"FollowCoins/service"
	"FollowCoins/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.Use(authorize)
	g.POST("/init", context.Wrap(u.Init))
	g.GET("/me", context.Wrap(u.Me))
}

// Init 登记当前用户资料
func (u *User) Init(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.InitUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	stats, err := u.UserService.Init(c.Request.Context(), &types.Profile{
		FID:         userID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		PfpURL:      req.PfpURL,
	})
	if err != nil {
		return bizError(err)
	}
	response.Success(c, stats)
	return nil
}

// Me 个人主页概览
func (u *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	dashboard, err := u.UserService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, dashboard)
	return nil
}
