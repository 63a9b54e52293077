package client

import (
	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/constants"
	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/http"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// Client implements the crs.Client interface.
type Client struct {
	httpClient *http.Client

	targetCollections crs.TargetCollectionsClient
	targets           crs.TargetsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *crs.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new recognition API client.
func New(config *crs.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, crs.ErrAPIEndpointRequired
	}

	if config.Token == "" {
		return nil, crs.ErrTokenRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, config.Token, config.Version, httpOpts...)

	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = constants.DefaultPollInterval
	}

	poller := newPoller(httpClient, pollInterval, config.PollTimeout)

	client := &Client{
		httpClient: httpClient,
	}

	client.targetCollections = NewTargetCollectionsClient(httpClient, poller)
	client.targets = NewTargetsClient(httpClient, poller)

	return client, nil
}

// TargetCollections implements crs.Client.TargetCollections.
func (c *Client) TargetCollections() crs.TargetCollectionsClient {
	return c.targetCollections
}

// Targets implements crs.Client.Targets.
func (c *Client) Targets() crs.TargetsClient {
	return c.targets
}

// loggerAdapter adapts crs.Logger to http.Logger.
type loggerAdapter struct {
	logger crs.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
