package api

import (
	"net/http"

	_ "github.com/darkkaiser/team-hooks/docs"
	"github.com/darkkaiser/team-hooks/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 인증 없이 접근하는 라우트를 등록합니다.
//
//	GET  /health      훅 서비스 상태
//	GET  /version     빌드 정보
//	GET  /swagger/*   API 문서 (Swagger UI)
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)

	e.GET("/swagger", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
