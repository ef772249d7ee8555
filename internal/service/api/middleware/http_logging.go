package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	"github.com/darkkaiser/team-hooks/internal/service/api/httputil"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/darkkaiser/team-hooks/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청마다 접근 로그 한 줄을 기록하는 미들웨어를 반환합니다.
//
// 응답 상태에 따라 로그 레벨이 달라집니다 (5xx: Error, 4xx: Warn, 그 외: Info).
// 핸들러가 httputil.AddAccessLogFields로 추가한 필드(예: 이벤트 종류, 실패한 훅 수)도 함께 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// 패닉이 발생해도 접근 로그는 남긴다.
			defer func() {
				logAccess(c, time.Since(start))
			}()

			// 상태 코드가 확정되도록 에러는 여기서 응답으로 변환한다.
			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

func logAccess(c echo.Context, latency time.Duration) {
	req := c.Request()
	res := c.Response()

	bytesIn := req.ContentLength
	if bytesIn < 0 {
		bytesIn = 0
	}

	fields := applog.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"uri":        maskSensitiveQueryParams(req.RequestURI),
		"remote_ip":  c.RealIP(),
		"user_agent": req.UserAgent(),
		"status":     res.Status,
		"bytes_in":   bytesIn,
		"bytes_out":  res.Size,
		"latency_ms": float64(latency.Microseconds()) / 1000,
		"request_id": res.Header().Get(echo.HeaderXRequestID),
	}
	for k, v := range httputil.AccessLogFields(c) {
		fields[k] = v
	}

	entry := applog.WithComponentAndFields(constants.ComponentAccessLog, fields)
	switch {
	case res.Status >= http.StatusInternalServerError:
		entry.Error("HTTP 요청")
	case res.Status >= http.StatusBadRequest:
		entry.Warn("HTTP 요청")
	default:
		entry.Info("HTTP 요청")
	}
}

// maskSensitiveQueryParams URI의 쿼리 중 constants.SensitiveQueryParams에 해당하는 값을 마스킹합니다.
// 마스킹할 값이 없거나 쿼리를 해석할 수 없으면 원본을 그대로 반환합니다.
//
//	"/api/v1/events?app_key=secret123" → "/api/v1/events?app_key=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	path, rawQuery, found := strings.Cut(uri, "?")
	if !found || rawQuery == "" {
		return uri
	}

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return uri
	}

	masked := false
	for _, param := range constants.SensitiveQueryParams {
		values, ok := q[param]
		if !ok {
			continue
		}
		for i, v := range values {
			values[i] = strutil.MaskSensitiveData(v)
		}
		masked = true
	}

	if !masked {
		return uri
	}
	return path + "?" + q.Encode()
}
