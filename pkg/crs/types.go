package crs

import (
	"encoding/json"
	"time"
)

// StatusCompleted is the terminal status reported by the recognition
// service for an asynchronous operation.
const StatusCompleted = "COMPLETED"

// TargetCollection represents a named, server-managed group of recognition
// targets. The id is assigned by the server on creation.
type TargetCollection struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Target is one recognizable image registered within a target collection.
// The service treats targets as open property bags (name, image reference,
// physical dimensions, and whatever fields future API versions add), so the
// type is a plain JSON object rather than a fixed record.
type Target map[string]interface{}

// ID returns the server-assigned target id, or "" if not present.
func (t Target) ID() string {
	id, _ := t["id"].(string)

	return id
}

// Name returns the target name, or "" if not present.
func (t Target) Name() string {
	name, _ := t["name"].(string)

	return name
}

// OperationStatus describes the progress of an asynchronous server-side
// job. Status and EstimatedLatency are extracted from the decoded body;
// Payload retains the complete body, including job-specific result data
// that only appears once the operation has completed.
type OperationStatus struct {
	Status           string
	EstimatedLatency int64 // milliseconds
	Payload          map[string]interface{}
}

// UnmarshalJSON decodes the full status payload and lifts the well-known
// fields out of it.
func (s *OperationStatus) UnmarshalJSON(data []byte) error {
	var payload map[string]interface{}

	err := json.Unmarshal(data, &payload)
	if err != nil {
		return err
	}

	s.Payload = payload

	if status, ok := payload["status"].(string); ok {
		s.Status = status
	}

	if latency, ok := payload["estimatedLatency"].(float64); ok {
		s.EstimatedLatency = int64(latency)
	}

	return nil
}

// MarshalJSON writes the full payload back out unchanged.
func (s OperationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Payload)
}

// Completed reports whether the operation has reached its terminal state.
func (s *OperationStatus) Completed() bool {
	return s.Status == StatusCompleted
}

// Config represents client configuration for building a crs.Client.
//
// Token and Version are attached to every request as the X-Api-Token and
// X-Version headers and are immutable for the lifetime of a client.
//
// PollInterval controls the wait between status polls for asynchronous
// operations (target generation, bulk target add). Waits are truncated to
// whole seconds, matching the service's timing contract. Polling is
// unbounded by default: the loop runs until the server reports completion
// or a request fails. Set PollTimeout to bound it explicitly, or cancel
// the context passed to the operation.
type Config struct {
	// APIEndpoint is the base URL of the recognition management API.
	APIEndpoint string `yaml:"api_endpoint"`

	// Token is the API token for this account.
	Token string `yaml:"token"`

	// Version is the API version sent with every request.
	Version string `yaml:"version"`

	// PollInterval is the wait between status polls. Defaults to 10s.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollTimeout bounds the polling loop of asynchronous operations.
	// Zero means no bound.
	PollTimeout time.Duration `yaml:"poll_timeout"`

	// RetryMax enables transport-level retries for transient failures
	// (>=500, 429, connection errors) when greater than zero. The API's
	// operation semantics are never retried.
	RetryMax int `yaml:"retry_max"`

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration `yaml:"retry_wait_min"`

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration `yaml:"retry_wait_max"`

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool `yaml:"-"`

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger `yaml:"-"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent"`
}
