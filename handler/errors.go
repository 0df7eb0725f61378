package handler

import (
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/response"
	"FollowCoins/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// bizError 业务错误转换为响应错误码
func bizError(err error) error {
	var se *service.Error
	if !errors.As(err, &se) {
		log.L.Error("internal error", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "internal error")
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return response.NewError(http.StatusBadRequest, se.Msg)
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, se.Msg)
	case errors.Is(err, service.ErrInsufficientBalance):
		return response.NewError(http.StatusPaymentRequired, se.Msg)
	case errors.Is(err, service.ErrConflict):
		return response.NewError(http.StatusConflict, se.Msg)
	case errors.Is(err, service.ErrUpstream):
		log.L.Warn("upstream error", zap.Error(err))
		return response.NewError(http.StatusBadGateway, se.Msg)
	}

	log.L.Error("internal error", zap.Error(err))
	return response.NewError(http.StatusInternalServerError, "internal error")
}
