package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by LOGOS_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("LOGOS_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DatabaseURL is optional. Empty means the service keeps cases in memory only.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// APIKey is the bearer key required on /v1 routes. Empty disables auth.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// HistoryCap overrides the tuning file's history_cap when set.
// Returns 0 if not set.
func HistoryCap() int {
	n, err := strconv.Atoi(os.Getenv("HISTORY_CAP"))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// AnalysisTimeout bounds a single query at the service layer.
// Defaults to 2s if not set.
func AnalysisTimeout() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("ANALYSIS_TIMEOUT_MS"))
	if err != nil || ms <= 0 {
		return 2 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}

// BatchConcurrency returns how many batch queries run in parallel.
// Defaults to 4 if not set.
func BatchConcurrency() int {
	n, err := strconv.Atoi(os.Getenv("BATCH_CONCURRENCY"))
	if err != nil || n <= 0 {
		return 4
	}
	return n
}

// RandomSeed returns the composer seed. 0 means seed from the runtime.
func RandomSeed() uint64 {
	seed, err := strconv.ParseUint(os.Getenv("RANDOM_SEED"), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

// RestoreMaxBytes caps the body of a learning restore request.
// Defaults to 64 MiB if not set.
func RestoreMaxBytes() int64 {
	n, err := strconv.ParseInt(os.Getenv("RESTORE_MAX_BYTES"), 10, 64)
	if err != nil || n <= 0 {
		return 64 << 20
	}
	return n
}

// TuningFile is an optional YAML file overriding heuristic weights.
func TuningFile() string {
	return os.Getenv("TUNING_FILE")
}
