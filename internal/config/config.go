package config

import (
	"os"
	"strconv"
	"time"

	"github.com/jengzang/geolife-backend-go/internal/analytics"
	"github.com/jengzang/geolife-backend-go/internal/ingest"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	DataDir   string // Geolife dataset root (one folder per user)
	JWTSecret string

	BatchSize    int // track point flush threshold during ingestion
	MaxFileLines int // per-file data line cap
	Workers      int // analytics fetch pool size

	RateLimit       int           // requests per client per window
	RateLimitWindow time.Duration // rate limit window
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/geolife/geolife.db"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./dataset/Data"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:         port,
		DBPath:       dbPath,
		DataDir:      dataDir,
		JWTSecret:    jwtSecret,
		BatchSize:    intEnv("BATCH_SIZE", ingest.DefaultBatchSize),
		MaxFileLines: intEnv("MAX_FILE_LINES", ingest.DefaultMaxFileLines),
		Workers:      intEnv("WORKERS", analytics.DefaultWorkers),

		RateLimit:       intEnv("RATE_LIMIT", 100),
		RateLimitWindow: time.Duration(intEnv("RATE_LIMIT_WINDOW_SEC", 60)) * time.Second,
	}
}

func intEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
