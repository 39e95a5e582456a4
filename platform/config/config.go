// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketScanUploads() string
	IsMinIOEnabled() bool
}

// VisionConfig provides settings for the vision model provider.
type VisionConfig interface {
	GetGeminiAPIKey() string
	GetVisionModel() string
	GetTokenWarnThreshold() int64
}

// WineLookupConfig provides settings for the wine search provider.
type WineLookupConfig interface {
	GetWineAPIBaseURL() string
	GetWineAPIKey() string
	GetEnrichmentTimeout() time.Duration
}

// DiscogsConfig provides settings for the Discogs vinyl provider.
type DiscogsConfig interface {
	GetDiscogsBaseURL() string
	GetDiscogsToken() string
	GetEnrichmentTimeout() time.Duration
}

// EnrichmentConfig provides settings shared by the enrichment orchestrator.
type EnrichmentConfig interface {
	GetEnrichmentTimeout() time.Duration
	GetEnrichmentBatchTimeout() time.Duration
	GetEnrichmentConcurrency() int
}

// CleanupConfig provides settings for the deferred storage cleanup worker.
type CleanupConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetImageRetention() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                    string
	HTTPAddr               string
	DatabaseURL            string
	JWTAccessSecret        string
	CORSAllowAll           bool
	CORSOrigins            []string
	CORSAllowCreds         bool
	MinIOEndpoint          string
	MinIOAccessKey         string
	MinIOSecretKey         string
	MinIOUseSSL            bool
	MinIOMaxFileSize       int64
	MinioBucketScanUploads string
	GeminiAPIKey           string
	VisionModel            string
	TokenWarnThreshold     int64
	WineAPIBaseURL         string
	WineAPIKey             string
	DiscogsBaseURL         string
	DiscogsToken           string
	EnrichmentTimeout      time.Duration
	EnrichmentBatchTimeout time.Duration
	EnrichmentConcurrency  int
	RedisURL               string
	RedisTLSInsecure       bool
	AsynqQueueName         string
	AsynqConcurrency       int
	ImageRetention         time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string          { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string         { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string         { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool              { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64        { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketScanUploads() string { return c.MinioBucketScanUploads }
func (c *Config) IsMinIOEnabled() bool              { return c.MinIOEndpoint != "" }

// VisionConfig implementation
func (c *Config) GetGeminiAPIKey() string       { return c.GeminiAPIKey }
func (c *Config) GetVisionModel() string        { return c.VisionModel }
func (c *Config) GetTokenWarnThreshold() int64  { return c.TokenWarnThreshold }

// WineLookupConfig / DiscogsConfig implementation
func (c *Config) GetWineAPIBaseURL() string { return c.WineAPIBaseURL }
func (c *Config) GetWineAPIKey() string     { return c.WineAPIKey }
func (c *Config) GetDiscogsBaseURL() string { return c.DiscogsBaseURL }
func (c *Config) GetDiscogsToken() string   { return c.DiscogsToken }

// EnrichmentConfig implementation
func (c *Config) GetEnrichmentTimeout() time.Duration      { return c.EnrichmentTimeout }
func (c *Config) GetEnrichmentBatchTimeout() time.Duration { return c.EnrichmentBatchTimeout }
func (c *Config) GetEnrichmentConcurrency() int            { return c.EnrichmentConcurrency }

// CleanupConfig implementation
func (c *Config) GetRedisURL() string               { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool         { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string         { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int          { return c.AsynqConcurrency }
func (c *Config) GetImageRetention() time.Duration  { return c.ImageRetention }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		JWTAccessSecret:        getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:           corsAllowAll,
		CORSOrigins:            corsOrigins,
		CORSAllowCreds:         strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		MinIOEndpoint:          getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:         getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:         getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:            strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:       mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "20971520")),
		MinioBucketScanUploads: getEnv("MINIO_BUCKET_SCAN_UPLOADS", "scan-uploads"),
		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		VisionModel:            getEnv("VISION_MODEL", "gemini-2.5-flash"),
		TokenWarnThreshold:     mustInt64(getEnv("TOKEN_WARN_THRESHOLD", "15000")),
		WineAPIBaseURL:         getEnv("WINE_API_BASE_URL", "https://api.winefinder.io/v1"),
		WineAPIKey:             getEnv("WINE_API_KEY", ""),
		DiscogsBaseURL:         getEnv("DISCOGS_BASE_URL", "https://api.discogs.com"),
		DiscogsToken:           getEnv("DISCOGS_TOKEN", ""),
		EnrichmentTimeout:      mustDuration(getEnv("ENRICHMENT_TIMEOUT", "5s")),
		EnrichmentBatchTimeout: mustDuration(getEnv("ENRICHMENT_BATCH_TIMEOUT", "30s")),
		EnrichmentConcurrency:  int(mustInt64(getEnv("ENRICHMENT_CONCURRENCY", "8"))),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisTLSInsecure:       strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:         getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:       int(mustInt64(getEnv("ASYNQ_CONCURRENCY", "10"))),
		ImageRetention:         mustDuration(getEnv("IMAGE_RETENTION", "24h")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
