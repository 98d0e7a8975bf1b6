package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_DefaultShape(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"response": "PASS"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, WithBodyField("model", "llama3"))

	text, err := client.Invoke(context.Background(), "judge this")
	require.NoError(t, err)
	assert.Equal(t, "PASS", text)
	assert.Equal(t, "judge this", received["prompt"])
	assert.Equal(t, "llama3", received["model"])
}

func TestHTTPClient_ChatCompletionPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"FAIL: no refusal"}}]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, WithResponsePath("choices.0.message.content"))

	text, err := client.Invoke(context.Background(), "judge this")
	require.NoError(t, err)
	assert.Equal(t, "FAIL: no refusal", text)
}

func TestHTTPClient_Headers(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"response": "PASS"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, WithHeader("Authorization", "Bearer token"))

	_, err := client.Invoke(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token", auth)
}

func TestHTTPClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	_, err := client.Invoke(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPClient_MissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	_, err := client.Invoke(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"response"`)
}

func TestStubClient(t *testing.T) {
	stub := &StubClient{Response: "PASS"}

	text, err := stub.Invoke(context.Background(), "first prompt")
	require.NoError(t, err)
	assert.Equal(t, "PASS", text)
	assert.Equal(t, 1, stub.Calls())
	assert.Equal(t, "first prompt", stub.LastPrompt())
}
