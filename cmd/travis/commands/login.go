package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/trvs-io/travis-client/pkg/travis"
	"github.com/trvs-io/travis-client/pkg/travisclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Travis CI",
		Long:  "Store an API token for a Travis CI endpoint after verifying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Printf("API endpoint [%s]: ", travisclient.DefaultEndpoint)
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if token == "" {
				fmt.Print("API token: ")
				tokenBytes, err := term.ReadPassword(syscall.Stdin)
				fmt.Println()
				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}
				token = strings.TrimSpace(string(tokenBytes))
			}

			if token == "" {
				return ErrTokenRequired
			}

			config := &travis.Config{
				BaseURL: apiEndpoint,
				Token:   token,
			}

			client, err := travisclient.New(config)
			if err != nil {
				return fmt.Errorf("creating API client: %w", err)
			}

			// Verify the token before persisting anything
			user, err := client.Users().Current(context.Background())
			if err != nil {
				return fmt.Errorf("verifying token: %w", err)
			}

			viper.Set("api", config.BaseURL)
			viper.Set("token", token)
			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Login)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "endpoint", "", "API endpoint URL")
	cmd.Flags().StringVar(&token, "with-token", "", "API token (prompted when omitted)")

	return cmd
}

// saveConfig persists the effective configuration to the config file, writing
// the default location when no file has been read yet.
func saveConfig() error {
	if viper.ConfigFileUsed() != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := home + "/.travis/config.yml"
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
