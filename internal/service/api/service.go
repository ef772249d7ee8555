// Package api 훅 서버의 REST API(이벤트 수신, 훅 관리, 헬스체크)를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/darkkaiser/team-hooks/internal/config"
	"github.com/darkkaiser/team-hooks/internal/pkg/version"
	apiauth "github.com/darkkaiser/team-hooks/internal/service/api/auth"
	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	"github.com/darkkaiser/team-hooks/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/team-hooks/internal/service/api/v1"
	v1handler "github.com/darkkaiser/team-hooks/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// HookService API 서버가 사용하는 훅 서비스 기능입니다. *hook.Service가 구현합니다.
type HookService = v1handler.HookService

// Service API 서버의 생명주기를 관리합니다.
//
// Start()로 시작하며, 서버는 고루틴에서 실행됩니다.
// 전달받은 context가 취소되면 Graceful Shutdown을 수행한 뒤 WaitGroup에 종료를 알립니다.
type Service struct {
	appConfig *config.AppConfig

	hookService HookService

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, hookService HookService, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		hookService: hookService,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 호출 전에 serviceStopWG.Add(1)을 해야 하며, 에러를 반환하거나 이미 실행 중인 경우에는
// 이 함수가 serviceStopWG.Done()을 호출합니다.
//
// 다음 경우 에러를 반환합니다:
//   - HookService가 nil인 경우
//   - api.app_key가 설정되지 않은 경우
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 시작 중...")

	if s.hookService == nil {
		defer serviceStopWG.Done()
		return ErrHookServiceNotInitialized
	}

	if err := s.appConfig.API.RequireAppKey(); err != nil {
		defer serviceStopWG.Done()
		return err
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn("API 서비스가 이미 시작된 상태입니다")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": s.appConfig.API.ListenPort,
	}).Info("API 서비스 시작됨")

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버를 생성하고 미들웨어와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	authenticator := apiauth.NewAuthenticator(s.appConfig.API.AppKey)

	systemHandler := system.NewHandler(s.hookService, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.hookService)

	e := NewHTTPServer(HTTPServerConfig{
		Debug: s.appConfig.Debug,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, authenticator)

	return e
}

// startHTTPServer HTTP 서버를 시작합니다. 서버가 종료될 때까지 반환되지 않으며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug("HTTP 서버 시작")

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown 완료 (Info)
//   - 그 외: 포트 바인딩 실패 등 예상치 못한 에러 (Error)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info("HTTP 서버 종료됨")
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error("HTTP 서버 구동 중 치명적인 오류가 발생했습니다")
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 서비스를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info("API 서비스 중지 중...")
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error("HTTP 서버가 예기치 않게 종료되었습니다")
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error("HTTP 서버 Graceful Shutdown 실패")
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 중지됨")
}
