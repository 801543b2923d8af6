package ocr_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docledger/docledger/internal/ocr"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClient_Extract(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		doc, err := base64.StdEncoding.DecodeString(req["document"].(string))
		require.NoError(t, err)
		assert.Equal(t, "image bytes", string(doc))
		assert.Equal(t, "png", req["format"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"text":       "Total: $42.00",
			"confidence": 0.91,
			"pages":      1,
		})
	}))
	defer srv.Close()

	c := ocr.NewClient(ocr.Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
	res, err := c.Extract(context.Background(), writeDoc(t, "image bytes"))
	require.NoError(t, err)

	assert.Equal(t, "Total: $42.00", res.Text)
	assert.InDelta(t, 0.91, res.Confidence, 0.001)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestClient_Extract_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	c := ocr.NewClient(ocr.Config{Endpoint: srv.URL}, nil)
	_, err := c.Extract(context.Background(), writeDoc(t, "x"))
	assert.ErrorContains(t, err, "ocr response rejected")
}

func TestClient_Extract_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := ocr.NewClient(ocr.Config{Endpoint: srv.URL}, nil)
	_, err := c.Extract(context.Background(), writeDoc(t, "x"))
	assert.ErrorContains(t, err, "status 502")
}
