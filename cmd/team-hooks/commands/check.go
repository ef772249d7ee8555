package commands

import (
	"fmt"

	"github.com/darkkaiser/team-hooks/internal/service/hook"
	"github.com/spf13/cobra"
)

// NewCheckCommand 설정 파일을 검증하는 명령을 생성합니다.
func NewCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "설정 파일 검증",
		Long:  "설정 파일을 읽어 모든 훅의 속성을 검증하고, 권장 설정을 따르지 않은 항목을 경고로 출력합니다.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.setupCommandLogging(cmd.ErrOrStderr())

			appConfig, err := opts.loadConfig()
			if err != nil {
				return err
			}

			hookService, err := hook.NewService(appConfig)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, warning := range appConfig.VerifyRecommendations() {
				fmt.Fprintf(out, "[WARN] %s\n", warning)
			}
			fmt.Fprintf(out, "설정 파일이 유효합니다: %s (훅 %d개)\n", opts.configPath, len(hookService.Hooks()))

			return nil
		},
	}
}
