package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// defaultCORSOrigins mirrors the local frontends used during development
var defaultCORSOrigins = []string{
	"http://localhost",
	"http://localhost:8080",
	"http://localhost:3000",
	"http://127.0.0.1",
	"http://127.0.0.1:8080",
	"http://127.0.0.1:3000",
}

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	IsProd     bool   // Is production environment
	DBDriver   string // mysql or sqlite
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	DBPath     string // SQLite file path

	JWTSecret string        // JWT secret key
	TokenTTL  time.Duration // Access token lifetime

	RedisAddr string // Redis server address, empty disables the login throttle
	RedisPass string // Redis password
	RedisDB   int    // Redis database number

	LoginMaxAttempts int           // Failed logins allowed inside the window
	LoginLockout     time.Duration // Failure window and lockout length

	CORSOrigins []string // Allowed CORS origins
	LogLevel    string   // logrus level name
	LogFormat   string   // text or json
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:    envOrDefault("APP_PORT", "8080"),
		IsProd:     os.Getenv("IS_PROD") == "true",
		DBDriver:   strings.ToLower(envOrDefault("DB_DRIVER", "mysql")),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     envOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:     envOrDefault("DB_PORT", "3306"),
		DBName:     envOrDefault("DB_NAME", "hotel"),
		DBPath:     envOrDefault("DB_PATH", "hotel.db"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Duration(intOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASS"),
		RedisDB:   intOrDefault("REDIS_DB", 0),

		LoginMaxAttempts: intOrDefault("LOGIN_MAX_ATTEMPTS", 5),
		LoginLockout:     time.Duration(intOrDefault("LOGIN_LOCKOUT_SECONDS", 900)) * time.Second,

		CORSOrigins: listOrDefault("CORS_ORIGINS", defaultCORSOrigins),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
	}
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true&loc=UTC"
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func intOrDefault(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func listOrDefault(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
