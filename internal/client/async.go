package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/http"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// pollState is the state of one asynchronous operation as seen by the
// client: the operation is initiated, then alternates between waiting and
// polling until the server reports completion. Errors abort the machine
// instead of reaching a terminal failure state.
type pollState int

const (
	stateInitiated pollState = iota
	stateWaiting
	statePolling
	stateCompleted
)

// poller drives asynchronous server-side operations to completion. The
// server accepts the initiating request with 202 and a Location header;
// the poller then GETs that location until the reported status is
// COMPLETED. There is no bound on the number of polls unless a timeout
// was configured.
type poller struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func newPoller(httpClient *http.Client, pollInterval, pollTimeout time.Duration) *poller {
	return &poller{
		httpClient:   httpClient,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

// Run initiates an asynchronous operation with a POST to path and polls
// the returned location until the server reports completion. The final
// status, including any job-specific result data, is returned in full.
func (p *poller) Run(ctx context.Context, path string, payload interface{}) (*crs.OperationStatus, error) {
	if p.pollTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, p.pollTimeout)
		defer cancel()
	}

	var (
		location string
		wait     time.Duration
		status   crs.OperationStatus
	)

	state := stateInitiated

	for {
		switch state {
		case stateInitiated:
			resp, err := p.httpClient.Post(ctx, path, payload)
			if err != nil {
				return nil, fmt.Errorf("initiating operation: %w", err)
			}

			location = resp.Headers.Get("Location")
			if location == "" {
				return nil, crs.ErrMissingLocation
			}

			wait = p.firstWait(resp)
			state = stateWaiting

		case stateWaiting:
			err := sleep(ctx, wait)
			if err != nil {
				return nil, fmt.Errorf("waiting for operation: %w", err)
			}

			state = statePolling

		case statePolling:
			resp, err := p.httpClient.Get(ctx, location)
			if err != nil {
				return nil, fmt.Errorf("polling operation status: %w", err)
			}

			err = json.Unmarshal(resp.Body, &status)
			if err != nil {
				return nil, fmt.Errorf("parsing operation status: %w", err)
			}

			if status.Completed() {
				state = stateCompleted
			} else {
				wait = p.pollInterval
				state = stateWaiting
			}

		case stateCompleted:
			return &status, nil
		}
	}
}

// firstWait derives the wait before the first poll. When the initiating
// response carries an estimatedLatency hint (milliseconds), that hint wins;
// otherwise the configured poll interval is used.
func (p *poller) firstWait(resp *http.Response) time.Duration {
	if resp.HasJSONBody() {
		var hint struct {
			EstimatedLatency *int64 `json:"estimatedLatency"`
		}

		err := json.Unmarshal(resp.Body, &hint)
		if err == nil && hint.EstimatedLatency != nil {
			return time.Duration(*hint.EstimatedLatency) * time.Millisecond
		}
	}

	return p.pollInterval
}

// sleep suspends for the duration truncated to whole seconds. Sub-second
// remainders are dropped; this truncation is part of the service's timing
// contract, not an approximation.
func sleep(ctx context.Context, d time.Duration) error {
	d = d.Truncate(time.Second)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
