package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents worker configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	Port              string
	DatabaseURL       string
	StorageBaseURL    string
	StorageServiceKey string
	StorageBucket     string
	StoragePath       string
	InferenceBaseURL  string
	InferenceModel    string
	HTTPReadTimeout   time.Duration
	HTTPWriteTimeout  time.Duration
	HTTPIdleTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. DATABASE_URL is deliberately optional: without store
// credentials the worker still serves its trigger surface and reports zero
// processed jobs, so a missing secret degrades instead of crash-looping.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "7860"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		StorageBaseURL:    os.Getenv("STORAGE_BASE_URL"),
		StorageServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "receipt-images"),
		StoragePath:       getEnv("STORAGE_PATH", "./storage"),
		InferenceBaseURL:  getEnv("INFERENCE_BASE_URL", "http://localhost:8501"),
		InferenceModel:    getEnv("INFERENCE_MODEL", "naver-clova-ix/donut-base-finetuned-cord-v2"),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.StorageBaseURL != "" && cfg.StorageServiceKey == "" {
		return nil, fmt.Errorf("STORAGE_SERVICE_KEY is required when STORAGE_BASE_URL is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
