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

type Stats struct {
	Config       *config.Config
	StatsService service.IStatsService
}

func (s *Stats) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	r.GET("/v1/stats/:fid", context.Wrap(s.GetStats))
	r.GET("/v1/coins/logs", authorize, context.Wrap(s.ListCoinLogs))
	r.POST("/v1/referrals", authorize, context.Wrap(s.ApplyReferral))
}

// GetStats 用户统计，不存在时初始化
func (s *Stats) GetStats(c *gin.Context) error {
	fid, err := strconv.ParseInt(c.Param("fid"), 10, 64)
	if err != nil || fid <= 0 {
		return response.NewError(http.StatusBadRequest, "fid 格式错误")
	}

	stats, err := s.StatsService.GetOrInitStats(c.Request.Context(), fid)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, stats)
	return nil
}

// ListCoinLogs 金币流水
func (s *Stats) ListCoinLogs(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListCoinLogsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := s.StatsService.ListCoinLogs(c.Request.Context(), userID, req.Action, req.Cursor, req.Limit)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// ApplyReferral 当前登录用户作为被邀请人，referrer_fid 与 code 二选一
func (s *Stats) ApplyReferral(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ApplyReferralReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	var stats *types.UserStats
	switch {
	case req.Code != "":
		stats, err = s.StatsService.ApplyReferralCode(c.Request.Context(), req.Code, userID)
	case req.ReferrerFID > 0:
		stats, err = s.StatsService.ApplyReferral(c.Request.Context(), req.ReferrerFID, userID)
	default:
		return response.NewError(http.StatusBadRequest, "referrer_fid 或 code 不能为空")
	}
	if err != nil {
		return bizError(err)
	}
	response.Success(c, stats)
	return nil
}
