package middleware

import (
	"github.com/darkkaiser/team-hooks/internal/service/api/auth"
	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication App Key 인증을 수행하는 미들웨어를 반환합니다.
//
// App Key 추출 우선순위:
//  1. X-App-Key 헤더 (권장)
//  2. app_key 쿼리 파라미터 (레거시)
//
// 인증 실패 시:
//   - 400 Bad Request: App Key 누락
//   - 401 Unauthorized: App Key 불일치
//
// Panics:
//   - authenticator가 nil인 경우
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic("Authenticator는 필수입니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authenticator.Authenticate(extractAppKey(c)); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// extractAppKey App Key를 추출합니다. 쿼리 파라미터를 사용한 경우 경고 로그를 남깁니다.
func extractAppKey(c echo.Context) string {
	appKey := c.Request().Header.Get(constants.HeaderAppKey)
	if appKey != "" {
		return appKey
	}

	appKey = c.QueryParam(constants.QueryParamAppKey)
	if appKey != "" {
		applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
			"method":    c.Request().Method,
			"path":      c.Path(),
			"remote_ip": c.RealIP(),
		}).Debug("쿼리 파라미터로 App Key 전달됨 (헤더 사용 권장)")
	}

	return appKey
}
