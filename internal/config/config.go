package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string

	// TLS material; when both are set the server listens over HTTPS.
	TLSCertFile string
	TLSKeyFile  string

	SessionSecret string
	SessionMaxAge time.Duration

	RedisURL string

	// Rate limits for the registration and login forms.
	RegisterRateMax    int
	RegisterRateWindow time.Duration
	LoginRateMax       int
	LoginRateWindow    time.Duration

	// Environment is "development" or "production". Production hides
	// internal error detail from rendered pages.
	Environment string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  sslMode,

		ServerPort: serverPort,

		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: envSeconds("SESSION_MAX_AGE", 24*time.Hour),

		RedisURL: os.Getenv("REDIS_URL"),

		RegisterRateMax:    envInt("REGISTER_RATE_MAX", 5),
		RegisterRateWindow: envSeconds("REGISTER_RATE_WINDOW", 15*time.Minute),
		LoginRateMax:       envInt("LOGIN_RATE_MAX", 5),
		LoginRateWindow:    envSeconds("LOGIN_RATE_WINDOW", 5*time.Minute),

		Environment: env,
	}, nil
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}
