// Package crsclient provides the main entry point for creating cloud
// recognition API clients
package crsclient

import (
	"strings"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/client"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// New creates a new cloud recognition API client.
func New(config *crs.Config) (crs.Client, error) {
	if config == nil {
		return nil, crs.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, crs.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	return client.New(config)
}

// NewWithToken creates a new client with an API endpoint, token, and
// API version.
func NewWithToken(endpoint, token, version string) (crs.Client, error) {
	return New(&crs.Config{
		APIEndpoint: endpoint,
		Token:       token,
		Version:     version,
	})
}
