package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDataDir           = "."
	defaultHTTPTimeout       = 5 * time.Second
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
	defaultStubAddr          = "127.0.0.1:3000"
	defaultDBFilePermissions = 0600

	envFile = ".env"
)

type Config struct {
	APIURL            string
	DataDir           string
	HTTPTimeout       time.Duration
	LogLevel          string
	LogFormat         string
	StubAddr          string
	DBFilePermissions os.FileMode
}

// Load reads the client configuration. WTW_API_URL is required.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := cfg.loadRequired(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStub reads the configuration of the stub backend, which does not
// talk to an API itself.
func LoadStub() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg := &Config{
		APIURL:            os.Getenv("WTW_API_URL"),
		DataDir:           getEnvOrDefault("WTW_DATA_DIR", defaultDataDir),
		LogLevel:          getEnvOrDefault("WTW_LOG_LEVEL", defaultLogLevel),
		LogFormat:         getEnvOrDefault("WTW_LOG_FORMAT", defaultLogFormat),
		StubAddr:          getEnvOrDefault("WTW_STUB_ADDR", defaultStubAddr),
		HTTPTimeout:       defaultHTTPTimeout,
		DBFilePermissions: defaultDBFilePermissions,
	}

	if value := os.Getenv("WTW_HTTP_TIMEOUT"); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("invalid WTW_HTTP_TIMEOUT %q", value)
		}
		cfg.HTTPTimeout = timeout
	}

	if value := os.Getenv("WTW_DB_FILE_MODE"); value != "" {
		mode, err := strconv.ParseUint(value, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid WTW_DB_FILE_MODE %q: %w", value, err)
		}
		cfg.DBFilePermissions = os.FileMode(mode)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid WTW_LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func (c *Config) loadRequired() error {
	if c.APIURL == "" {
		return fmt.Errorf("required environment variable missing: %s", "WTW_API_URL")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "whattowatch.db")
}

func (c *Config) StubDBPath() string {
	return filepath.Join(c.DataDir, "stub.db")
}
