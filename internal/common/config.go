package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Workers   WorkerConfig
	Storage   StorageConfig
	Extractor ExtractorConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// WorkerConfig holds worker-pool configuration
type WorkerConfig struct {
	PoolSize    int
	QueueSize   int
	TaskTimeout time.Duration
}

// StorageConfig holds local artifact/upload directories
type StorageConfig struct {
	UploadDir string
	ExportDir string
}

// ExtractorConfig points at the external extraction collaborator.
type ExtractorConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Workers: WorkerConfig{
			PoolSize:    getEnvAsInt("WORKER_POOL_SIZE", 4),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 256),
			TaskTimeout: getEnvAsDuration("TASK_TIMEOUT", 3*time.Minute),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "./tmp/uploads"),
			ExportDir: getEnv("EXPORT_DIR", "./tmp/exports"),
		},
		Extractor: ExtractorConfig{
			URL:     getEnv("EXTRACTOR_URL", ""),
			APIKey:  getEnv("EXTRACTOR_API_KEY", ""),
			Timeout: getEnvAsDuration("EXTRACTOR_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrValidation)
	}
	if c.Workers.PoolSize <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKER_POOL_SIZE must be positive", ErrValidation)
	}
	if c.Extractor.URL == "" {
		return NewAppError("CONFIG_ERROR", "EXTRACTOR_URL is required", ErrValidation)
	}
	return nil
}
