package middleware

import (
	"FollowCoins/pkg/log"
	"FollowCoins/pkg/response"
	"FollowCoins/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-Id"

// GinZap 访问日志，同时透传或生成请求 ID
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.L.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.L.Warn("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}

// Recovery panic 记录堆栈并返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("request_id", c.GetString("request_id")),
					zap.String("trace", utils.PanicTrace(r)),
				)
				response.Abort(c, http.StatusInternalServerError, "internal error")
			}
		}()
		c.Next()
	}
}
