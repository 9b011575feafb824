package cli

import (
	"fmt"
	"strconv"

	"github.com/getmockd/oasfaker/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// configEntry is one resolved setting and where it came from.
type configEntry struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration and the source of each value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := a.configEntries()
			if cmd.Flags().Changed("output") {
				return a.print(cmd.OutOrStdout(), entries)
			}
			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Value, e.Source)
			}
			return tw.Flush()
		},
	}
}

func (a *app) configEntries() []configEntry {
	c := a.cfg
	optInt := func(p *int) string {
		if p == nil {
			return "-"
		}
		return strconv.Itoa(*p)
	}
	seed := "-"
	if c.Seed != nil {
		seed = strconv.FormatUint(*c.Seed, 10)
	}

	rows := [][2]string{
		{"strategy", c.Strategy},
		{"minItems", optInt(c.MinItems)},
		{"maxItems", optInt(c.MaxItems)},
		{"alwaysFakeOptionals", strconv.FormatBool(c.AlwaysFakeOptionals)},
		{"maxDepth", strconv.Itoa(c.MaxDepth)},
		{"maxDuplicates", strconv.Itoa(c.MaxDuplicates)},
		{"seed", seed},
		{"validateSpec", strconv.FormatBool(c.ValidateSpec)},
		{"logLevel", c.LogLevel},
		{"logFormat", c.LogFormat},
	}
	out := make([]configEntry, 0, len(rows))
	for _, r := range rows {
		source := c.Sources[r[0]]
		if source == "" {
			source = "unset"
		}
		out = append(out, configEntry{Key: r[0], Value: r[1], Source: source})
	}
	return out
}
