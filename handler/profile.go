package handler

import (
	"FollowCoins/pkg/context"
	"FollowCoins/pkg/response"
	"FollowCoins/service"
	"FollowCoins/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Profile struct {
	ProfileService service.IProfileService
}

func (p *Profile) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/profiles")
	g.POST("/resolve", context.Wrap(p.Resolve))
}

func (p *Profile) Resolve(c *gin.Context) error {
	var req types.ResolveProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "profile_ref 不能为空")
	}

	profile, err := p.ProfileService.Resolve(c.Request.Context(), req.ProfileRef)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, profile)
	return nil
}
