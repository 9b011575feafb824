package cli

import (
	"fmt"

	"github.com/getmockd/oasfaker/internal/regexsample"
	"github.com/spf13/cobra"
)

func newRegexSampleCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regex-sample <pattern>",
		Short: "Print the deterministic sample used for a pattern under the static strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), regexsample.Sample(args[0]))
			return nil
		},
	}
}
