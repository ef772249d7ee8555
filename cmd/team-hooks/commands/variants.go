package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	"github.com/spf13/cobra"
)

// NewVariantsCommand 사용할 수 있는 훅 종류와 속성을 출력하는 명령을 생성합니다.
func NewVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "사용할 수 있는 훅 종류(service) 목록 출력",
		Long: `설정 파일의 hooks[].service에 지정할 수 있는 훅 종류와 각 종류의 속성을 출력합니다.
필수 속성은 *로 표시합니다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSERVICE\tPROPERTIES\tEVENTS")
			for _, d := range variant.Default().Descriptors() {
				name := d.Name
				if d.Deprecated {
					name += " (deprecated)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, d.ServiceName, describeProperties(d), joinKinds(d.Capabilities()))
			}
			return tw.Flush()
		},
	}
}

func describeProperties(d *variant.Descriptor) string {
	fields := d.Schema.Describe()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		name := f.Name
		if f.Required {
			name += "*"
		}
		names = append(names, name)
	}
	return strings.Join(names, ",")
}
