package middleware

import (
	"net/http"
	"sync/atomic"
	"time"

	"FollowCoins/pkg/response"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"
)

// 超过该时长未访问的客户端限流器会被清理
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

type ipLimiter struct {
	perSecond rate.Limit
	burst     int
	idle      time.Duration
	visitors  cmap.ConcurrentMap[string, *visitor]
	lastSweep atomic.Int64
}

func newIPLimiter(perSecond float64, burst int, idle time.Duration) *ipLimiter {
	l := &ipLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		idle:      idle,
		visitors:  cmap.New[*visitor](),
	}
	l.lastSweep.Store(time.Now().UnixNano())
	return l
}

func (l *ipLimiter) allow(key string, now time.Time) bool {
	v, ok := l.visitors.Get(key)
	if !ok {
		v = l.visitors.Upsert(key, nil, func(exist bool, old *visitor, _ *visitor) *visitor {
			if exist {
				return old
			}
			return &visitor{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		})
	}
	v.lastSeen.Store(now.UnixNano())

	l.sweep(now)
	return v.limiter.AllowN(now, 1)
}

// sweep 每个 idle 周期最多执行一次
func (l *ipLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idle) || !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	deadline := now.Add(-l.idle).UnixNano()
	for _, key := range l.visitors.Keys() {
		l.visitors.RemoveCb(key, func(_ string, v *visitor, exists bool) bool {
			return exists && v.lastSeen.Load() < deadline
		})
	}
}

// RateLimit 按客户端 IP 的令牌桶限流，perSecond <= 0 时不限流
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	if perSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = int(perSecond)
		if burst < 1 {
			burst = 1
		}
	}

	limiter := newIPLimiter(perSecond, burst, limiterIdleTTL)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			response.Abort(c, http.StatusTooManyRequests, "请求过于频繁")
			return
		}
		c.Next()
	}
}
