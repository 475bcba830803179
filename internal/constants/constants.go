// Package constants collects tunables shared by the transport layer and the
// CLI.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and retry tuning.
const (
	// DefaultHTTPTimeout bounds one API call, batch operations included.
	DefaultHTTPTimeout = 30 * time.Second


	// DefaultRetryMax is the default maximum number of transport retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// DefaultCacheTTL bounds how long GET response bodies are reused.
	DefaultCacheTTL = 30 * time.Second
)

// Collection windowing.
const (
	// StandardPageSize is the window size requested by default.
	StandardPageSize = 25

	// MaxPageSize is the largest window the service accepts.
	MaxPageSize = 100
)
