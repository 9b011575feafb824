package cli

import (
	"fmt"

	"github.com/getmockd/oasfaker/pkg/cli/internal/output"
	"github.com/getmockd/oasfaker/pkg/conform"
	"github.com/getmockd/oasfaker/pkg/faker"
	"github.com/getmockd/oasfaker/pkg/mockgen"
	"github.com/spf13/cobra"
)

func newRequestCmd(a *app) *cobra.Command {
	var contentType, example string

	cmd := &cobra.Command{
		Use:   "request <spec> <path> <method>",
		Short: "Generate a request body for an operation",
		Long: `Generate a request body for an operation. readOnly properties are left out.

Under --strategy static a declared example is printed instead: the one named by
--example, or the first one.`,
		Example: `  oasfaker request petstore.yaml /pets POST
  oasfaker request petstore.yaml /pets POST --strategy static --example rex`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.faker(args[0])
			if err != nil {
				return err
			}
			warnIgnoredExample(cmd, f, example)
			v, err := f.MockRequestForExample(args[1], args[2], example, contentType)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&contentType, "content-type", "application/json", "Media type of the request body")
	cmd.Flags().StringVar(&example, "example", "", "Name of the example to print (static strategy)")
	return cmd
}

func newResponseCmd(a *app) *cobra.Command {
	var contentType, example, status string

	cmd := &cobra.Command{
		Use:   "response <spec> <path> <method>",
		Short: "Generate a response body for an operation",
		Long: `Generate a response body for an operation. writeOnly properties are left out.

The status code is matched exactly, then against a range such as 2XX, then
against the default response.`,
		Example: `  oasfaker response petstore.yaml /pets/42 GET
  oasfaker response petstore.yaml /pets GET --status 500 --select '$.message'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.faker(args[0])
			if err != nil {
				return err
			}
			warnIgnoredExample(cmd, f, example)
			v, err := f.MockResponseForExample(args[1], args[2], example, status, contentType)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&status, "status", "200", "Response status code")
	cmd.Flags().StringVar(&contentType, "content-type", "application/json", "Media type of the response body")
	cmd.Flags().StringVar(&example, "example", "", "Name of the example to print (static strategy)")
	return cmd
}

// warnIgnoredExample reports an --example that only applies under the static
// strategy.
func warnIgnoredExample(cmd *cobra.Command, f *mockgen.Faker, example string) {
	if example != "" && f.Options().Strategy != faker.StrategyStatic {
		output.Warn(cmd.ErrOrStderr(), "--example %q is ignored under the %s strategy", example, f.Options().Strategy)
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	var check bool
	var count int

	cmd := &cobra.Command{
		Use:   "schema <spec> <name>",
		Short: "Generate a value for a component schema",
		Example: `  oasfaker schema petstore.yaml Pet
  oasfaker schema petstore.yaml Pet --count 5 --check`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			f, err := a.faker(args[0])
			if err != nil {
				return err
			}

			values := make([]any, 0, count)
			for range count {
				v, err := f.MockComponentSchema(args[1])
				if err != nil {
					return err
				}
				values = append(values, v)
			}

			if check {
				s, err := f.Document().ComponentSchema(args[1])
				if err != nil {
					return err
				}
				for i, v := range values {
					if err := conform.Check(s, v); err != nil {
						return fmt.Errorf("value %d: %w", i+1, err)
					}
				}
				a.log.Info("generated values conform to schema", "name", args[1], "count", count)
			}

			if count == 1 {
				return a.print(cmd.OutOrStdout(), values[0])
			}
			return a.print(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Validate generated values against the schema")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	return cmd
}
