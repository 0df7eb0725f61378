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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/follows")
	g.POST("", authorize, context.Wrap(f.Settle))
}

// Settle 关注订单目标并领取金币
func (f *Follow) Settle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SettleFollowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "order_id 不能为空")
	}

	res, err := f.FollowService.SettleFollow(c.Request.Context(), userID, context.GetSignerUUID(c), req.OrderID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, res)
	return nil
}
