package describer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "instalação elétrica")

		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "  Instalação elétrica completa do imóvel.  "}},
			},
		})
	}))
	defer srv.Close()

	g := NewOpenAI(srv.URL, "test-key", "test-model", srv.Client())
	got, err := g.Describe(context.Background(), "instalação elétrica")
	require.NoError(t, err)
	assert.Equal(t, "Instalação elétrica completa do imóvel.", got)
}

func TestDescribeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewOpenAI(srv.URL, "test-key", "test-model", srv.Client())
	_, err := g.Describe(context.Background(), "anything")
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "429")
}

func TestDescribeEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	g := NewOpenAI(srv.URL, "test-key", "test-model", srv.Client())
	_, err := g.Describe(context.Background(), "anything")
	require.ErrorIs(t, err, ErrGeneration)
}
