package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/team-hooks/internal/config"
	"github.com/darkkaiser/team-hooks/internal/pkg/version"
	"github.com/darkkaiser/team-hooks/internal/service/api"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/spf13/cobra"
)

const banner = `
  _____                          _   _                _
 |_   _|___  __ _  _ __ ___     | | | |  ___    ___  | | __ ___
   | | / _ \/ _' || '_ ' _ \    | |_| | / _ \  / _ \ | |/ // __|
   | ||  __/ (_| || | | | | |   |  _  || (_) || (_) ||   < \__ \
   |_| \___|\__,_||_| |_| |_|   |_| |_| \___/  \___/ |_|\_\|___/
                                                      %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

// NewServeCommand 이벤트 수신 API 서버를 실행하는 명령을 생성합니다.
func NewServeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "이벤트 수신 API 서버 실행",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(opts)
		},
	}
}

func runServe(opts *globalOptions) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := opts.loadConfig()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return err
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}
	logOpts.CallerPathPrefix = "github.com/darkkaiser/team-hooks"

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		return err
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	fields := buildInfo.LogFields()
	fields["env"] = map[bool]string{true: "development", false: "production"}[appConfig.Debug]
	applog.WithComponentAndFields(component, fields).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	hookService, err := hook.NewService(appConfig)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("훅 서비스 초기화 실패")
		return err
	}

	apiService := api.NewService(appConfig, hookService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()
		return err
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent(component).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()

	return nil
}
