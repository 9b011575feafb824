package cli

import (
	"fmt"
	"strings"

	"github.com/getmockd/oasfaker/pkg/cli/internal/output"
	"github.com/getmockd/oasfaker/pkg/document"
	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components <spec>",
		Short: "List the component schemas of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0], document.WithValidation(a.cfg.ValidateSpec))
			if err != nil {
				return err
			}
			names := doc.ComponentNames()
			if cmd.Flags().Changed("output") {
				return a.print(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths <spec>",
		Short: "List the operations of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0], document.WithValidation(a.cfg.ValidateSpec))
			if err != nil {
				return err
			}
			ops := doc.Operations()
			if cmd.Flags().Changed("output") {
				type entry struct {
					Method string `json:"method" yaml:"method"`
					Path   string `json:"path" yaml:"path"`
				}
				out := make([]entry, 0, len(ops))
				for _, op := range ops {
					out = append(out, entry{Method: strings.ToUpper(op.Method), Path: op.Path})
				}
				return a.print(cmd.OutOrStdout(), out)
			}
			tw := output.Table(cmd.OutOrStdout())
			for _, op := range ops {
				fmt.Fprintf(tw, "%s\t%s\n", strings.ToUpper(op.Method), op.Path)
			}
			return tw.Flush()
		},
	}
}
