package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "4100")
	t.Setenv("OCR_SERVER_TIMEOUT", "2500")
	t.Setenv("OCR_CACHE_TTL", "60")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4100, cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, 2500*time.Millisecond, cfg.OCRServerTimeout)
	assert.Equal(t, time.Minute, cfg.OCRCacheTTL)
	assert.Equal(t, OCRProviderOpenAI, cfg.OCRProvider)
}

func TestLoadRequiresOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OCR_PROVIDER", OCRProviderOpenAI)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: 5000
environment: production
ocr_provider: remote
ocr_server_url: http://ocr.internal:9000
ocr_server_timeout: 3s
max_upload_bytes: 2048
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "5001")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, OCRProviderRemote, cfg.OCRProvider)
	assert.Equal(t, "http://ocr.internal:9000", cfg.OCRServerURL)
	assert.Equal(t, 3*time.Second, cfg.OCRServerTimeout)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.OCRProvider = "tesseract"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown OCR provider")
}
