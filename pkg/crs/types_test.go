package crs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

func TestOperationStatus_UnmarshalJSON(t *testing.T) {
	t.Run("completed with result data", func(t *testing.T) {
		data := []byte(`{"status":"COMPLETED","result":{"archived":true,"targets":12}}`)

		var status crs.OperationStatus

		err := json.Unmarshal(data, &status)
		require.NoError(t, err)

		assert.Equal(t, "COMPLETED", status.Status)
		assert.True(t, status.Completed())

		// The full payload survives, including fields the client does
		// not model.
		result, ok := status.Payload["result"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, result["archived"])
		assert.Equal(t, float64(12), result["targets"])
	})

	t.Run("in progress with latency estimate", func(t *testing.T) {
		data := []byte(`{"status":"PENDING","estimatedLatency":1500}`)

		var status crs.OperationStatus

		err := json.Unmarshal(data, &status)
		require.NoError(t, err)

		assert.Equal(t, "PENDING", status.Status)
		assert.False(t, status.Completed())
		assert.Equal(t, int64(1500), status.EstimatedLatency)
	})

	t.Run("round trip preserves the payload", func(t *testing.T) {
		data := []byte(`{"custom":"field","status":"COMPLETED"}`)

		var status crs.OperationStatus

		require.NoError(t, json.Unmarshal(data, &status))

		out, err := json.Marshal(status)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(out))
	})
}

func TestTarget_Accessors(t *testing.T) {
	target := crs.Target{
		"id":       "tg1",
		"name":     "product-1",
		"imageUrl": "https://example.com/product-1.jpg",
	}

	assert.Equal(t, "tg1", target.ID())
	assert.Equal(t, "product-1", target.Name())

	empty := crs.Target{}
	assert.Empty(t, empty.ID())
	assert.Empty(t, empty.Name())
}
