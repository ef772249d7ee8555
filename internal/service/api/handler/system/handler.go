// Package system 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/team-hooks/internal/pkg/version"
	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	"github.com/darkkaiser/team-hooks/internal/service/api/model/system"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// HookLister 헬스체크에서 훅 서비스 상태를 확인하는 데 사용합니다.
type HookLister interface {
	Hooks() []hook.Info
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	hooks HookLister

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(hooks HookLister, buildInfo version.Info) *Handler {
	if hooks == nil {
		panic("HookLister는 필수입니다")
	}

	return &Handler{
		hooks: hooks,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 훅 서비스의 상태를 확인합니다. 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Description 활성화된 훅이 하나도 없으면 hook_service는 unhealthy로 표시됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청")

	count := len(h.hooks.Hooks())

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: fmt.Sprintf("활성화된 훅 %d개", count),
	}
	if count == 0 {
		dep = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: "활성화된 훅이 없습니다",
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status: dep.Status,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{
			constants.DependencyHookService: dep,
		},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
