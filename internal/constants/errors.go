package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIEndpoint = errors.New("no API endpoint configured, use --api or 'crs config set api_endpoint <url>'")
	ErrNoToken       = errors.New("no API token configured, use --token or 'crs config set-token'")
)

// Validation errors.
var (
	ErrCollectionNameRequired = errors.New("collection name is required")
	ErrTargetFileRequired     = errors.New("a targets file is required (--from-file)")
	ErrUnknownConfigKey       = errors.New("unknown configuration key")
)
