package client

import "strings"

// Path templates for the recognition management API. Placeholders are
// substituted with expandPath; templates themselves are never mutated.
const (
	pathTargetCollections    = "/cloudrecognition/targetCollection"
	pathTargetCollection     = "/cloudrecognition/targetCollection/{collectionId}"
	pathGeneration           = "/cloudrecognition/targetCollection/{collectionId}/generation/cloudarchive"
	pathTargets              = "/cloudrecognition/targetCollection/{collectionId}/target"
	pathTargetsBatch         = "/cloudrecognition/targetCollection/{collectionId}/targets"
	pathTarget               = "/cloudrecognition/targetCollection/{collectionId}/target/{targetId}"
	placeholderCollectionID  = "collectionId"
	placeholderTargetID      = "targetId"
)

// expandPath substitutes every {placeholder} occurrence in the template
// with its value and returns the resulting path. Values are inserted
// verbatim; the caller supplies all placeholders the template names.
func expandPath(template string, values map[string]string) string {
	path := template
	for name, value := range values {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}

	return path
}

// collectionPath expands a template that names only the collection id.
func collectionPath(template, collectionID string) string {
	return expandPath(template, map[string]string{
		placeholderCollectionID: collectionID,
	})
}

// targetPath expands a template that names both ids.
func targetPath(template, collectionID, targetID string) string {
	return expandPath(template, map[string]string{
		placeholderCollectionID: collectionID,
		placeholderTargetID:     targetID,
	})
}
