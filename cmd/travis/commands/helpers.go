package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/trvs-io/travis-client/pkg/travis"
	"github.com/trvs-io/travis-client/pkg/travisclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired   = errors.New("authentication token is required, run 'travis login' first")
	ErrBuildIDRequired = errors.New("build id must be numeric")
	ErrJobIDRequired   = errors.New("job id must be numeric")
)

// CreateClient builds an API client from the effective configuration. The
// endpoint and token come from flags, environment, or the config file in
// that order of precedence.
func CreateClient() (travis.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	client, err := travisclient.New(&travis.Config{
		BaseURL: viper.GetString("api"),
		Token:   token,
	})
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format("2006-01-02 15:04")
}

func formatDuration(seconds int) string {
	if seconds == 0 {
		return NotAvailable
	}

	return (time.Duration(seconds) * time.Second).String()
}
