package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// OCR providers
const (
	OCRProviderOpenAI = "openai"
	OCRProviderRemote = "remote"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port int    `yaml:"port"`
	Env  string `yaml:"environment"` // development, production

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// OCR
	OCRProvider      string        `yaml:"ocr_provider"`
	OCRServerURL     string        `yaml:"ocr_server_url"`
	OCRServerTimeout time.Duration `yaml:"ocr_server_timeout"`
	OCRCacheTTL      time.Duration `yaml:"ocr_cache_ttl"`

	// OpenAI
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	OpenAIBaseURL   string `yaml:"openai_base_url"`
	OpenAIModel     string `yaml:"openai_model"`
	OpenAIMaxTokens int    `yaml:"openai_max_tokens"`

	// Uploads
	UploadDir      string `yaml:"upload_dir"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Port:             3000,
		Env:              "development",
		LogLevel:         "info",
		OCRProvider:      OCRProviderOpenAI,
		OCRServerURL:     "http://localhost:8080",
		OCRServerTimeout: 15 * time.Second,
		OCRCacheTTL:      10 * time.Minute,
		OpenAIModel:      "gpt-4o-mini",
		OpenAIMaxTokens:  1000,
		UploadDir:        os.TempDir(),
		MaxUploadBytes:   10 << 20,
	}
}

// Load loads configuration from an optional YAML file and then environment
// variables. Environment variables win over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getEnv("CONFIG_FILE", "")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Port = getEnvAsInt("PORT", cfg.Port)
	cfg.Env = getEnv("ENVIRONMENT", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.OCRProvider = getEnv("OCR_PROVIDER", cfg.OCRProvider)
	cfg.OCRServerURL = getEnv("OCR_SERVER_URL", cfg.OCRServerURL)
	cfg.OCRServerTimeout = getEnvAsMillis("OCR_SERVER_TIMEOUT", cfg.OCRServerTimeout)
	cfg.OCRCacheTTL = getEnvAsSeconds("OCR_CACHE_TTL", cfg.OCRCacheTTL)
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", cfg.OpenAIBaseURL)
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.OpenAIMaxTokens = getEnvAsInt("OPENAI_MAX_TOKENS", cfg.OpenAIMaxTokens)
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.MaxUploadBytes = int64(getEnvAsInt("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.OCRProvider {
	case OCRProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required when OCR_PROVIDER=%s", OCRProviderOpenAI)
		}
	case OCRProviderRemote:
		if c.OCRServerURL == "" {
			return fmt.Errorf("OCR_SERVER_URL is required when OCR_PROVIDER=%s", OCRProviderRemote)
		}
	default:
		return fmt.Errorf("unknown OCR provider %q", c.OCRProvider)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := getEnv(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsMillis(key string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return time.Duration(val) * time.Millisecond
	}
	return defaultVal
}

func getEnvAsSeconds(key string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return time.Duration(val) * time.Second
	}
	return defaultVal
}
