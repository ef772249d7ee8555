// Package v1 /api/v1 경로 하위의 엔드포인트를 등록합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/events           - 이벤트 발송
//   - GET  /api/v1/hooks            - 설정된 훅 목록
//   - POST /api/v1/hooks/:id/ping   - 훅 테스트 메시지 전송
//   - GET  /api/v1/variants         - 훅 종류 목록
//
// 모든 엔드포인트는 App Key 인증을 요구합니다.
package v1

import (
	"github.com/darkkaiser/team-hooks/internal/service/api/auth"
	"github.com/darkkaiser/team-hooks/internal/service/api/middleware"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	v1Group := e.Group("/api/v1", middleware.RequireAuthentication(authenticator))

	v1Group.POST("/events", h.DispatchEventHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)

	v1Group.GET("/hooks", h.ListHooksHandler)
	v1Group.POST("/hooks/:id/ping", h.PingHookHandler)
	v1Group.GET("/variants", h.ListVariantsHandler)
}
