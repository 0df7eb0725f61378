package handler

import (
	"FollowCoins/config"
	"FollowCoins/middleware"
	"FollowCoins/pkg/context"
	"FollowCoins/pkg/response"
	"FollowCoins/service"
	"FollowCoins/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(o.Config.Jwt.Secret))
	g := r.Group("/v1/orders")
	g.GET("/pending", context.Wrap(o.ListPending))
	g.GET("/suggested", authorize, context.Wrap(o.Suggested))
	g.GET("/mine", authorize, context.Wrap(o.ListMine))
	g.POST("", authorize, context.Wrap(o.Create))
	g.GET("/:order_id", context.Wrap(o.Detail))
	g.GET("/:order_id/followers", context.Wrap(o.Followers))
}

// Create 下单
func (o *Order) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	res, err := o.OrderService.CreateOrder(c.Request.Context(), userID, req.ProfileRef, req.Quantity)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, res)
	return nil
}

// ListPending 待完成订单队列
func (o *Order) ListPending(c *gin.Context) error {
	var req types.ListPendingOrdersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	orders, err := o.OrderService.ListPendingOrders(c.Request.Context(), req.Limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"orders": orders})
	return nil
}

func (o *Order) Suggested(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListPendingOrdersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	orders, err := o.OrderService.SuggestTargets(c.Request.Context(), userID, req.Limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"orders": orders})
	return nil
}

func (o *Order) ListMine(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListMyOrdersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := o.OrderService.ListMyOrders(c.Request.Context(), userID, req.Cursor, req.Limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (o *Order) Detail(c *gin.Context) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := o.OrderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, order)
	return nil
}

// Followers 通过该订单关注的用户
func (o *Order) Followers(c *gin.Context) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	followers, err := o.OrderService.ListOrderFollowers(c.Request.Context(), orderID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"followers": followers})
	return nil
}

func parseOrderID(c *gin.Context) (int64, error) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "order_id 格式错误")
	}
	return orderID, nil
}
