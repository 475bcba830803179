package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/trvs-io/travis-client/pkg/travis"
)

// NewLintCommand creates the lint command
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [FILE]",
		Short: "Validate a build configuration",
		Long:  "Submit a .travis.yml file to the lint endpoint and report its warnings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ".travis.yml"
			if len(args) == 1 {
				path = args[0]
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			// Reject files that are not even YAML before making a request.
			var doc any
			if err := yaml.Unmarshal(content, &doc); err != nil {
				return fmt.Errorf("%s is not valid YAML: %w", path, err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Lint().Lint(context.Background(), content)
			if err != nil {
				return fmt.Errorf("failed to lint configuration: %w", err)
			}

			return outputLintResult(path, result)
		},
	}

	return cmd
}

func outputLintResult(path string, result *travis.LintResult) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(result)
	case OutputFormatYAML:
		return StandardYAMLRenderer(result)
	default:
		if len(result.Warnings) == 0 {
			fmt.Printf("%s is valid\n", path)

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Key", "Message")

		for _, warning := range result.Warnings {
			_ = table.Append(strings.Join(warning.Key, "."), warning.Message)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
