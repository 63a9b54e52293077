package constants

import "time"

// Request headers attached to every API call.
const (
	// HeaderToken carries the account's API token.
	HeaderToken = "X-Api-Token"

	// HeaderVersion carries the API version.
	HeaderVersion = "X-Version"
)

// Time intervals and delays.
const (
	// DefaultPollInterval is the wait between status polls when the
	// service gives no latency estimate.
	DefaultPollInterval = 10 * time.Second
)

// Retry limits for the opt-in transport retry configuration.
const (
	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// File and directory permissions for the CLI configuration.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
