// Package commands team-hooks 실행 파일의 CLI 명령을 제공합니다.
package commands

import (
	"io"

	"github.com/darkkaiser/team-hooks/internal/config"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/spf13/cobra"
)

// component 로깅용 컴포넌트 이름
const component = "main"

// globalOptions 모든 명령이 공유하는 플래그 값
type globalOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand 최상위 명령을 생성합니다. 하위 명령 없이 실행하면 serve와 동일하게 동작합니다.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	serveCmd := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Qiita:Team 이벤트를 Slack, ChatWork, Telegram으로 전달하는 훅 서버",
		Long: `Qiita:Team에서 발생한 이벤트(글 작성, 댓글, 프로젝트 변경, 멤버 추가 등)를 수신하여
설정 파일에 등록된 훅으로 전달합니다.`,
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultFilename, "설정 파일 경로")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "단발성 명령 실행 시 상세 로그 출력")

	cmd.AddCommand(
		serveCmd,
		NewDispatchCommand(opts),
		NewPingCommand(opts),
		NewHooksCommand(opts),
		NewVariantsCommand(),
		NewCheckCommand(opts),
		NewVersionCommand(),
	)

	return cmd
}

// loadConfig 설정 파일을 읽습니다.
func (o *globalOptions) loadConfig() (*config.AppConfig, error) {
	return config.LoadWithFile(o.configPath)
}

// setupCommandLogging serve 이외의 단발성 명령에서 사용하는 로그 설정입니다.
// 로그 파일을 만들지 않고 표준 에러로만 출력하며, 기본적으로 경고 이상만 기록합니다.
func (o *globalOptions) setupCommandLogging(stderr io.Writer) {
	applog.SetOutput(stderr)
	applog.SetFormatter(&applog.TextFormatter{DisableTimestamp: true})
	if o.verbose {
		applog.SetLevel(applog.DebugLevel)
	} else {
		applog.SetLevel(applog.WarnLevel)
	}
}

// newHookService 설정 파일을 읽어 훅 서비스를 생성합니다.
func (o *globalOptions) newHookService() (*hook.Service, error) {
	appConfig, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return hook.NewService(appConfig)
}
