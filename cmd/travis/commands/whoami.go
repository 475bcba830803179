package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trvs-io/travis-client/pkg/travis"
)

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Long:  "Display the user the configured API token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Current(context.Background())
			if err != nil {
				return fmt.Errorf("fetching current user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func outputUser(user *travis.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Login", user.Login)
		_ = table.Append("Name", user.Name)
		_ = table.Append("ID", strconv.FormatInt(user.ID, 10))
		_ = table.Append("Syncing", strconv.FormatBool(user.IsSyncing))
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
