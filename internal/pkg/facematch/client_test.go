package facematch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Verify_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/verify", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req verifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "emp-1", req.EmployeeID)
		assert.Len(t, req.Descriptor, 3)

		json.NewEncoder(w).Encode(MatchResult{
			Verified:   true,
			Confidence: 0.97,
			Distance:   0.31,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	result, err := client.Verify(context.Background(), "emp-1", []float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, 0.97, result.Confidence)
}

func TestClient_Verify_NotRecognized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a failed match is still a 200: the verdict is in the body
		json.NewEncoder(w).Encode(MatchResult{Verified: false, Distance: 0.92})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	result, err := client.Verify(context.Background(), "emp-1", []float64{0.1})
	require.NoError(t, err)
	assert.False(t, result.Verified)
}

func TestClient_Verify_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.Verify(context.Background(), "emp-1", []float64{0.1})
	assert.Error(t, err)
}
