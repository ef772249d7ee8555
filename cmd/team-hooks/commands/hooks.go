package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/spf13/cobra"
)

// NewPingCommand 훅에 테스트 메시지를 보내는 명령을 생성합니다.
func NewPingCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping <hook-id>",
		Short: "훅 설정 확인용 테스트 메시지 전송",
		Long: `지정한 훅으로 테스트 메시지를 보냅니다.
전송 실패는 경고 로그로만 출력되며, 훅을 찾을 수 없을 때만 에러로 종료합니다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.setupCommandLogging(cmd.ErrOrStderr())

			id := contract.HookID(strings.TrimSpace(args[0]))
			if id == "" {
				return apperrors.New(apperrors.InvalidInput, "훅 ID가 비어 있습니다")
			}

			hookService, err := opts.newHookService()
			if err != nil {
				return err
			}

			if err := hookService.Ping(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "테스트 메시지를 전송했습니다: %s\n", id)
			return nil
		},
	}
}

// NewHooksCommand 설정된 훅 목록을 출력하는 명령을 생성합니다.
func NewHooksCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "설정된 훅 목록 출력",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.setupCommandLogging(cmd.ErrOrStderr())

			hookService, err := opts.newHookService()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tVARIANT\tSERVICE\tEVENTS")
			for _, h := range hookService.Hooks() {
				variant := h.Variant
				if h.Deprecated {
					variant += " (deprecated)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.ID, variant, h.ServiceName, joinKinds(h.Capabilities))
			}
			return tw.Flush()
		},
	}
}

func joinKinds(kinds []contract.EventKind) string {
	if len(kinds) == 0 {
		return "-"
	}
	s := make([]string, 0, len(kinds))
	for _, k := range kinds {
		s = append(s, string(k))
	}
	return strings.Join(s, ",")
}
