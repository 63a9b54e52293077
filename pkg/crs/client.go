package crs

import (
	"context"
)

// TargetCollectionsClient manages target collections and their
// recognition-readiness.
type TargetCollectionsClient interface {
	// Create creates a new target collection with the given name.
	Create(ctx context.Context, name string) (*TargetCollection, error)
	// List returns all target collections of the account.
	List(ctx context.Context) ([]TargetCollection, error)
	// Get fetches a single target collection.
	Get(ctx context.Context, collectionID string) (*TargetCollection, error)
	// Rename changes the human-chosen name of a collection.
	Rename(ctx context.Context, collectionID, name string) (*TargetCollection, error)
	// Delete removes a collection. A nil error means the collection is gone.
	Delete(ctx context.Context, collectionID string) error
	// Generate rebuilds the recognition database for a collection. The call
	// blocks, polling the service, until the server reports completion.
	Generate(ctx context.Context, collectionID string) (*OperationStatus, error)
}

// TargetsClient manages individual recognition targets within a collection.
type TargetsClient interface {
	// Create registers one target in a collection.
	Create(ctx context.Context, collectionID string, target Target) (Target, error)
	// CreateMany registers a batch of targets. The call blocks, polling the
	// service, until the server reports completion.
	CreateMany(ctx context.Context, collectionID string, targets []Target) (*OperationStatus, error)
	// List returns all targets of a collection.
	List(ctx context.Context, collectionID string) ([]Target, error)
	// Get fetches a single target.
	Get(ctx context.Context, collectionID, targetID string) (Target, error)
	// Update replaces the properties of a target.
	Update(ctx context.Context, collectionID, targetID string, target Target) (Target, error)
	// Delete removes a target. A nil error means the target is gone.
	Delete(ctx context.Context, collectionID, targetID string) error
}

// Client is the entry point to the cloud recognition management API.
type Client interface {
	TargetCollections() TargetCollectionsClient
	Targets() TargetsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
