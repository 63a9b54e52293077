package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		expected string
	}{
		{
			name:     "no placeholders",
			template: pathTargetCollections,
			values:   nil,
			expected: "/cloudrecognition/targetCollection",
		},
		{
			name:     "collection id",
			template: pathTargetCollection,
			values:   map[string]string{"collectionId": "tc1"},
			expected: "/cloudrecognition/targetCollection/tc1",
		},
		{
			name:     "generation path",
			template: pathGeneration,
			values:   map[string]string{"collectionId": "tc1"},
			expected: "/cloudrecognition/targetCollection/tc1/generation/cloudarchive",
		},
		{
			name:     "collection and target id",
			template: pathTarget,
			values:   map[string]string{"collectionId": "tc1", "targetId": "tg1"},
			expected: "/cloudrecognition/targetCollection/tc1/target/tg1",
		},
		{
			name:     "values are inserted verbatim",
			template: pathTargetCollection,
			values:   map[string]string{"collectionId": "a b"},
			expected: "/cloudrecognition/targetCollection/a b",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			path := expandPath(testCase.template, testCase.values)
			assert.Equal(t, testCase.expected, path)
			assert.NotContains(t, path, "{")
			assert.NotContains(t, path, "}")
		})
	}
}
