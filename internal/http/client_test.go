package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crshttp "github.com/AltairMartinez/wikitude-cloud-recognition/internal/http"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/cloudrecognition/targetCollection", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-token", request.Header.Get("X-Api-Token"))
			assert.Equal(t, "2", request.Header.Get("X-Version"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			response := []map[string]string{{"id": "tc1", "name": "shelf1"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		req := &crshttp.Request{
			Method: "GET",
			Path:   "/cloudrecognition/targetCollection",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "tc1", result[0]["id"])
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "shelf1", body["name"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		req := &crshttp.Request{
			Method: "POST",
			Path:   "/cloudrecognition/targetCollection",
			Body:   map[string]string{"name": "shelf1"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request without payload has no body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, int64(0), request.ContentLength)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		_, err := client.Post(context.Background(), "/cloudrecognition/targetCollection/tc1", nil)
		require.NoError(t, err)
	})

	t.Run("absolute URLs pass through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/status/123", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Base URL deliberately bogus: the poll location must win.
		client := crshttp.NewClient("https://unused.invalid", "test-token", "2")

		resp, err := client.Get(context.Background(), server.URL+"/status/123")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		req := &crshttp.Request{
			Method: "GET",
			Path:   "/cloudrecognition/targetCollection",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := crshttp.NewClient(server.URL, "test-token", "2", crshttp.WithLogger(logger), crshttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/cloudrecognition/targetCollection")
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		expected string
	}{
		{name: "GET", method: "GET", expected: "GET"},
		{name: "POST", method: "POST", expected: "POST"},
		{name: "DELETE", method: "DELETE", expected: "DELETE"},
		{name: "PUT falls back to POST", method: "PUT", expected: "POST"},
		{name: "PATCH falls back to POST", method: "PATCH", expected: "POST"},
		{name: "empty method falls back to POST", method: "", expected: "POST"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.expected, request.Method)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := crshttp.NewClient(server.URL, "test-token", "2")

			req := &crshttp.Request{
				Method: testCase.method,
				Path:   "/test",
			}

			resp, err := client.Do(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_SuccessStatusCodes(t *testing.T) {
	t.Parallel()

	for _, statusCode := range []int{200, 202, 204} {
		statusCode := statusCode
		t.Run(http.StatusText(statusCode), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(statusCode)
			}))
			defer server.Close()

			client := crshttp.NewClient(server.URL, "test-token", "2")

			resp, err := client.Get(context.Background(), "/test")
			require.NoError(t, err)
			assert.Equal(t, statusCode, resp.StatusCode)
		})
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()
	t.Run("structured JSON body raises a service error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"message": "not found",
				"code":    404,
				"reason":  "NOT_FOUND",
			})
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		resp, err := client.Get(context.Background(), "/cloudrecognition/targetCollection/missing")
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		svcErr := &crs.ServiceError{}
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "not found", svcErr.Message)
		assert.Equal(t, 404, svcErr.Code)
		assert.Equal(t, "NOT_FOUND", svcErr.Reason)
		assert.Equal(t, "NOT_FOUND (404): not found", err.Error())
	})

	t.Run("plain text body raises a general error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/plain")
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		_, err := client.Get(context.Background(), "/test")
		require.Error(t, err)

		genErr := &crs.GeneralError{}
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, 502, genErr.Code)
		assert.Equal(t, "upstream unavailable", genErr.Message)
		assert.Equal(t, "(502): upstream unavailable", err.Error())
	})

	t.Run("server error with structured JSON body raises a service error", func(t *testing.T) {
		t.Parallel()

		// 5xx statuses are retryable for the underlying transport; the
		// final response must still reach the classifier.
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"message": "generation failed",
				"code":    500,
				"reason":  "INTERNAL_ERROR",
			})
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		resp, err := client.Get(context.Background(), "/test")
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 500, resp.StatusCode)

		svcErr := &crs.ServiceError{}
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "INTERNAL_ERROR", svcErr.Reason)
		assert.Equal(t, "generation failed", svcErr.Message)
	})

	t.Run("classification survives exhausted retries", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.Header().Set("Content-Type", "text/plain")
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2",
			crshttp.WithRetryConfig(2, 10*time.Millisecond, 100*time.Millisecond))

		_, err := client.Get(context.Background(), "/test")
		require.Error(t, err)
		assert.Equal(t, 3, attempts)

		genErr := &crs.GeneralError{}
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, 502, genErr.Code)
		assert.Equal(t, "upstream unavailable", genErr.Message)
	})

	t.Run("empty JSON-typed body raises a general error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.Header().Set("Content-Length", "0")
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		_, err := client.Get(context.Background(), "/test")
		require.Error(t, err)

		genErr := &crs.GeneralError{}
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, 500, genErr.Code)
		assert.Empty(t, genErr.Message)
	})

	t.Run("malformed JSON body falls back to a general error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte("not json"))
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		_, err := client.Get(context.Background(), "/test")
		require.Error(t, err)

		genErr := &crs.GeneralError{}
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, 400, genErr.Code)
		assert.Equal(t, "not json", genErr.Message)
	})

	t.Run("transport failure is not a typed API error", func(t *testing.T) {
		t.Parallel()

		client := crshttp.NewClient("http://127.0.0.1:0", "test-token", "2")

		resp, err := client.Get(context.Background(), "/test")
		require.Error(t, err)
		assert.Nil(t, resp)

		svcErr := &crs.ServiceError{}
		assert.False(t, errors.As(err, &svcErr))

		genErr := &crs.GeneralError{}
		assert.False(t, errors.As(err, &genErr))
	})
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2")

		_, err := client.Get(context.Background(), "/test")
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on 5xx errors when configured", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2",
			crshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := crshttp.NewClient(server.URL, "test-token", "2",
			crshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test")
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})
}

func TestResponse_HasJSONBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		contentType   string
		contentLength string
		body          []byte
		expected      bool
	}{
		{"json with body", "application/json", "15", []byte(`{"id":"tc1"}`), true},
		{"json with charset", "application/json; charset=utf-8", "15", []byte(`{"id":"tc1"}`), true},
		{"json with zero content length", "application/json", "0", []byte{}, false},
		{"json declared but empty body", "application/json", "", []byte{}, false},
		{"plain text", "text/plain", "5", []byte("hello"), false},
		{"no content type", "", "5", []byte("hello"), false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			headers := http.Header{}
			if testCase.contentType != "" {
				headers.Set("Content-Type", testCase.contentType)
			}

			if testCase.contentLength != "" {
				headers.Set("Content-Length", testCase.contentLength)
			}

			resp := &crshttp.Response{
				StatusCode: 200,
				Headers:    headers,
				Body:       testCase.body,
			}

			assert.Equal(t, testCase.expected, resp.HasJSONBody())
		})
	}
}
