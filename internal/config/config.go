package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"orderstatuscolor/server/internal/statuscolor"
)

const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	DatabaseURL        string
	RedisURL           string
	RedisSentinelAddrs []string // Sentinel addresses (comma separated)
	RedisMasterName    string
	ServerPort         string
	Environment        string
	LogLevel           string
	// Row coloring
	DefaultColor  string  // Color for statuses without a valid override
	Opacity       float64 // Row background opacity, 0.0 - 1.0
	ColorStore    string  // Where overrides are read from: postgres or redis
	RedisColorKey string  // Hash holding status id -> color when ColorStore is redis
}

// LoadDotEnv loads .env if present; a missing file is not an error.
func LoadDotEnv(filenames ...string) bool {
	if err := godotenv.Load(filenames...); err != nil {
		return false
	}
	return true
}

func Load() *Config {
	// DATABASE_URL, POSTGRES_URL, PGDATABASE_URL, then PG* parts
	databaseURL := getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		databaseURL = getEnv("POSTGRES_URL", "")
	}
	if databaseURL == "" {
		databaseURL = getEnv("PGDATABASE_URL", "")
	}
	if databaseURL == "" {
		pgHost := getEnv("PGHOST", "")
		pgPort := getEnv("PGPORT", "5432")
		pgUser := getEnv("PGUSER", "postgres")
		pgPassword := getEnv("PGPASSWORD", "")
		pgDatabase := getEnv("PGDATABASE", "eccube")

		if pgHost != "" {
			if pgPassword != "" {
				databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
					pgUser, pgPassword, pgHost, pgPort, pgDatabase)
			} else {
				databaseURL = fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable",
					pgUser, pgHost, pgPort, pgDatabase)
			}
		}
	}
	if databaseURL == "" {
		databaseURL = "postgres://postgres@localhost/eccube?sslmode=disable" // Fallback
	}

	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		redisHost := getEnv("REDISHOST", "")
		redisPort := getEnv("REDISPORT", "6379")
		redisPassword := getEnv("REDISPASSWORD", "")
		redisDB := getEnv("REDISDB", "0")

		if redisHost != "" {
			if redisPassword != "" {
				redisURL = fmt.Sprintf("redis://:%s@%s:%s/%s", redisPassword, redisHost, redisPort, redisDB)
			} else {
				redisURL = fmt.Sprintf("redis://%s:%s/%s", redisHost, redisPort, redisDB)
			}
		}
	}
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0" // Fallback
	}

	var sentinelAddrs []string
	if s := getEnv("REDIS_SENTINEL_ADDRS", ""); s != "" {
		for _, addr := range strings.Split(s, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				sentinelAddrs = append(sentinelAddrs, addr)
			}
		}
	}

	return &Config{
		DatabaseURL:        databaseURL,
		RedisURL:           redisURL,
		RedisSentinelAddrs: sentinelAddrs,
		RedisMasterName:    getEnv("REDIS_MASTER_NAME", "mymaster"),
		ServerPort:         getEnv("PORT", "8080"),
		Environment:        getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DefaultColor:       defaultColor(getEnv("STATUS_COLOR_DEFAULT", statuscolor.DefaultColor)),
		Opacity:            clampOpacity(getEnvFloat("STATUS_COLOR_OPACITY", statuscolor.DefaultOpacity)),
		ColorStore:         colorStore(getEnv("STATUS_COLOR_STORE", StorePostgres)),
		RedisColorKey:      getEnv("STATUS_COLOR_REDIS_KEY", "order_status_color"),
	}
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func defaultColor(raw string) string {
	color, ok := statuscolor.NormalizeColor(raw)
	if !ok {
		log.WithField("value", raw).Warn("STATUS_COLOR_DEFAULT is not a hex color, using " + statuscolor.DefaultColor)
		return statuscolor.DefaultColor
	}
	return color
}

func clampOpacity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func colorStore(v string) string {
	if strings.EqualFold(v, StoreRedis) {
		return StoreRedis
	}
	return StorePostgres
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
