package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rs/zerolog/log"
)

// ErrInvalidConfig marks an environment value that cannot be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Iterations          int
	MaxIterations       int
	Seed                int64
	HasSeed             bool
	BatchConcurrency    int
	DataPath            string
	LogDir              string
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return fromEnv(exeDir)
}

func fromEnv(exeDir string) (*AppConfig, error) {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))

	iterations, err := getEnvInt("FAIR_ITERATIONS", 10_000)
	if err != nil {
		return nil, err
	}
	maxIterations, err := getEnvInt("FAIR_MAX_ITERATIONS", 1_000_000)
	if err != nil {
		return nil, err
	}
	concurrency, err := getEnvInt("FAIR_BATCH_CONCURRENCY", runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	if iterations < 0 || maxIterations < 0 {
		return nil, goerr.Wrap(ErrInvalidConfig, "iteration counts must not be negative",
			goerr.V("iterations", iterations), goerr.V("max_iterations", maxIterations))
	}
	if concurrency < 1 {
		concurrency = 1
	}

	cfg := &AppConfig{
		Iterations:          iterations,
		MaxIterations:       maxIterations,
		BatchConcurrency:    concurrency,
		DataPath:            dataPath,
		LogDir:              logDir,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	if raw, ok := os.LookupEnv("FAIR_SEED"); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidConfig, "FAIR_SEED is not an integer", goerr.V("value", raw))
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// ClampIterations bounds a requested iteration count by MaxIterations.
// Zero falls back to the configured default.
func (c *AppConfig) ClampIterations(requested int) int {
	if requested == 0 {
		requested = c.Iterations
	}
	if c.MaxIterations > 0 && requested > c.MaxIterations {
		return c.MaxIterations
	}
	return requested
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidConfig, "expected an integer", goerr.V("key", key), goerr.V("value", value))
	}
	return n, nil
}
