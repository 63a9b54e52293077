package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/http"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// TargetsClient implements crs.TargetsClient.
type TargetsClient struct {
	httpClient *http.Client
	poller     *poller
}

// NewTargetsClient creates a new targets client.
func NewTargetsClient(httpClient *http.Client, poller *poller) *TargetsClient {
	return &TargetsClient{
		httpClient: httpClient,
		poller:     poller,
	}
}

// Create implements crs.TargetsClient.Create.
func (c *TargetsClient) Create(ctx context.Context, collectionID string, target crs.Target) (crs.Target, error) {
	path := collectionPath(pathTargets, collectionID)

	resp, err := c.httpClient.Post(ctx, path, target)
	if err != nil {
		return nil, fmt.Errorf("creating target: %w", err)
	}

	if !resp.HasJSONBody() {
		return target, nil
	}

	var created crs.Target

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing target: %w", err)
	}

	return created, nil
}

// CreateMany implements crs.TargetsClient.CreateMany. The server registers
// the batch in the background; CreateMany blocks, polling the status
// location, until the server reports completion.
func (c *TargetsClient) CreateMany(ctx context.Context, collectionID string, targets []crs.Target) (*crs.OperationStatus, error) {
	path := collectionPath(pathTargetsBatch, collectionID)

	status, err := c.poller.Run(ctx, path, targets)
	if err != nil {
		return nil, fmt.Errorf("creating targets: %w", err)
	}

	return status, nil
}

// List implements crs.TargetsClient.List.
func (c *TargetsClient) List(ctx context.Context, collectionID string) ([]crs.Target, error) {
	path := collectionPath(pathTargets, collectionID)

	resp, err := c.httpClient.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("listing targets: %w", err)
	}

	if !resp.HasJSONBody() {
		return nil, nil
	}

	var targets []crs.Target

	err = json.Unmarshal(resp.Body, &targets)
	if err != nil {
		return nil, fmt.Errorf("parsing targets: %w", err)
	}

	return targets, nil
}

// Get implements crs.TargetsClient.Get.
func (c *TargetsClient) Get(ctx context.Context, collectionID, targetID string) (crs.Target, error) {
	path := targetPath(pathTarget, collectionID, targetID)

	resp, err := c.httpClient.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("getting target: %w", err)
	}

	if !resp.HasJSONBody() {
		return crs.Target{"id": targetID}, nil
	}

	var target crs.Target

	err = json.Unmarshal(resp.Body, &target)
	if err != nil {
		return nil, fmt.Errorf("parsing target: %w", err)
	}

	return target, nil
}

// Update implements crs.TargetsClient.Update.
func (c *TargetsClient) Update(ctx context.Context, collectionID, targetID string, target crs.Target) (crs.Target, error) {
	path := targetPath(pathTarget, collectionID, targetID)

	resp, err := c.httpClient.Post(ctx, path, target)
	if err != nil {
		return nil, fmt.Errorf("updating target: %w", err)
	}

	if !resp.HasJSONBody() {
		return target, nil
	}

	var updated crs.Target

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing target: %w", err)
	}

	return updated, nil
}

// Delete implements crs.TargetsClient.Delete. Success is reported solely
// by a nil error; the response content is not inspected.
func (c *TargetsClient) Delete(ctx context.Context, collectionID, targetID string) error {
	path := targetPath(pathTarget, collectionID, targetID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting target: %w", err)
	}

	return nil
}
