package middleware

import (
	"sync"
	"time"

	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	"github.com/darkkaiser/team-hooks/internal/service/api/httputil"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// visitorIdleTTL 이 시간 동안 요청이 없던 IP의 Limiter는 정리 대상이 됩니다.
	visitorIdleTTL = 3 * time.Minute

	// maxVisitors 추적하는 IP 수의 상한. 정리 후에도 넘치면 새 IP는 공용 Limiter를 사용합니다.
	maxVisitors = 10000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter IP 주소별 Token Bucket을 관리합니다.
type ipRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	overflow  *rate.Limiter
	lastSweep time.Time

	limit rate.Limit
	burst int

	now func() time.Time
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
	l.overflow = rate.NewLimiter(l.limit, l.burst)
	l.lastSweep = l.now()
	return l
}

// allow ip의 요청을 허용할지 결정합니다.
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= visitorIdleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= maxVisitors {
			return l.overflow.AllowN(now, 1)
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep 오래 사용되지 않은 Limiter를 제거합니다. mu를 잡은 상태에서 호출해야 합니다.
func (l *ipRateLimiter) sweep(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= visitorIdleTTL {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

// RateLimiting IP별 요청 수를 제한하는 미들웨어를 반환합니다.
// 제한을 넘으면 Retry-After 헤더와 함께 429 Too Many Requests를 반환합니다.
//
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimiting(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic("[RateLimiting] requestsPerSecond는 양수여야 합니다")
	}
	if burst <= 0 {
		panic("[RateLimiting] burst는 양수여야 합니다")
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if limiter.allow(ip) {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"remote_ip": ip,
				"path":      c.Request().URL.Path,
			}).Warn("요청 빈도 제한 초과")

			c.Response().Header().Set("Retry-After", "1")
			return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
		}
	}
}
