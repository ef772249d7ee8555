package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/model/response"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/spf13/cobra"
)

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
)

// NewDispatchCommand JSON 파일의 이벤트를 설정된 모든 훅으로 전달하는 명령을 생성합니다.
func NewDispatchCommand(opts *globalOptions) *cobra.Command {
	var (
		eventPath    string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "이벤트 하나를 설정된 모든 훅으로 전달",
		Long: `JSON 형식의 이벤트를 읽어 설정된 모든 훅으로 전달하고 훅별 결과를 출력합니다.
하나 이상의 훅이 실패하면 종료 코드 1을 반환합니다.

  team-hooks dispatch --event event.json
  cat event.json | team-hooks dispatch --event -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.setupCommandLogging(cmd.ErrOrStderr())

			if outputFormat != outputFormatText && outputFormat != outputFormatJSON {
				return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 출력 형식입니다: '%s' (text 또는 json)", outputFormat)
			}

			event, err := readEvent(eventPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			hookService, err := opts.newHookService()
			if err != nil {
				return err
			}

			report := hookService.Dispatch(cmd.Context(), event)
			resp := response.NewDispatchResponse(report)

			if outputFormat == outputFormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(resp); err != nil {
					return err
				}
			} else {
				printDispatchResponse(cmd.OutOrStdout(), resp)
			}

			if err := report.Err(); err != nil {
				return apperrors.Wrapf(err, apperrors.ExecutionFailed, "%d개 훅으로 이벤트를 전달하지 못했습니다", resp.Summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&eventPath, "event", "e", "", "이벤트 JSON 파일 경로 (-: 표준 입력)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", outputFormatText, "출력 형식 (text, json)")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

// readEvent 파일(또는 표준 입력)에서 이벤트 요청을 읽어 Event로 변환합니다.
func readEvent(path string, stdin io.Reader) (*contract.Event, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "이벤트 파일을 열 수 없습니다: '%s'", path)
		}
		defer f.Close()
		r = f
	}

	var req contract.EventRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "이벤트 JSON을 해석할 수 없습니다")
	}

	return req.ToEvent()
}

func printDispatchResponse(w io.Writer, resp response.DispatchResponse) {
	fmt.Fprintf(w, "Event: %s\n\n", resp.Event)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOOK\tVARIANT\tSTATUS\tDURATION\tERROR")
	for _, o := range resp.Outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dms\t%s\n", o.HookID, o.Variant, o.Status, o.DurationMs, o.Error)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\ndelivered: %d, failed: %d, skipped: %d\n", resp.Summary.Delivered, resp.Summary.Failed, resp.Summary.Skipped)
}
