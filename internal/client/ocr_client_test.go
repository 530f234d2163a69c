package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofiler/internal/config"
)

func newTestClient(url string) *OCRClient {
	cfg := config.Default()
	cfg.OCRServerURL = url
	cfg.OCRServerTimeout = 2 * time.Second
	return NewOCRClient(cfg)
}

func TestExtractText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ocr", r.URL.Path)

		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)

		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("png-bytes"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Age: 42\nSmoker: yes"}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).ExtractText(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Age: 42\nSmoker: yes", text)
}

func TestExtractTextServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":{"code":"ENGINE_DOWN","message":"engine unavailable"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ExtractText(context.Background(), []byte("x"), "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENGINE_DOWN")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	healthy, err := newTestClient(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.True(t, healthy)
}
