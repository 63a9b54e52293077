package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/http"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// TargetCollectionsClient implements crs.TargetCollectionsClient.
type TargetCollectionsClient struct {
	httpClient *http.Client
	poller     *poller
}

// NewTargetCollectionsClient creates a new target collections client.
func NewTargetCollectionsClient(httpClient *http.Client, poller *poller) *TargetCollectionsClient {
	return &TargetCollectionsClient{
		httpClient: httpClient,
		poller:     poller,
	}
}

// Create implements crs.TargetCollectionsClient.Create.
func (c *TargetCollectionsClient) Create(ctx context.Context, name string) (*crs.TargetCollection, error) {
	body := map[string]string{"name": name}

	resp, err := c.httpClient.Post(ctx, pathTargetCollections, body)
	if err != nil {
		return nil, fmt.Errorf("creating target collection: %w", err)
	}

	if !resp.HasJSONBody() {
		return &crs.TargetCollection{Name: name}, nil
	}

	var collection crs.TargetCollection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing target collection: %w", err)
	}

	return &collection, nil
}

// List implements crs.TargetCollectionsClient.List.
func (c *TargetCollectionsClient) List(ctx context.Context) ([]crs.TargetCollection, error) {
	resp, err := c.httpClient.Get(ctx, pathTargetCollections)
	if err != nil {
		return nil, fmt.Errorf("listing target collections: %w", err)
	}

	if !resp.HasJSONBody() {
		return nil, nil
	}

	var collections []crs.TargetCollection

	err = json.Unmarshal(resp.Body, &collections)
	if err != nil {
		return nil, fmt.Errorf("parsing target collections: %w", err)
	}

	return collections, nil
}

// Get implements crs.TargetCollectionsClient.Get. The management API
// serves single-collection reads via POST with an empty body.
func (c *TargetCollectionsClient) Get(ctx context.Context, collectionID string) (*crs.TargetCollection, error) {
	path := collectionPath(pathTargetCollection, collectionID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting target collection: %w", err)
	}

	if !resp.HasJSONBody() {
		return &crs.TargetCollection{ID: collectionID}, nil
	}

	var collection crs.TargetCollection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing target collection: %w", err)
	}

	return &collection, nil
}

// Rename implements crs.TargetCollectionsClient.Rename.
func (c *TargetCollectionsClient) Rename(ctx context.Context, collectionID, name string) (*crs.TargetCollection, error) {
	path := collectionPath(pathTargetCollection, collectionID)
	body := map[string]string{"name": name}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("renaming target collection: %w", err)
	}

	if !resp.HasJSONBody() {
		return &crs.TargetCollection{ID: collectionID, Name: name}, nil
	}

	var collection crs.TargetCollection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing target collection: %w", err)
	}

	return &collection, nil
}

// Delete implements crs.TargetCollectionsClient.Delete. Success is
// reported solely by a nil error; the response content is not inspected.
func (c *TargetCollectionsClient) Delete(ctx context.Context, collectionID string) error {
	path := collectionPath(pathTargetCollection, collectionID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting target collection: %w", err)
	}

	return nil
}

// Generate implements crs.TargetCollectionsClient.Generate. The server
// rebuilds the recognition database in the background; Generate blocks,
// polling the status location, until the server reports completion.
func (c *TargetCollectionsClient) Generate(ctx context.Context, collectionID string) (*crs.OperationStatus, error) {
	path := collectionPath(pathGeneration, collectionID)

	status, err := c.poller.Run(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("generating target collection: %w", err)
	}

	return status, nil
}
