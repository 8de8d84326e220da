package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	DataDir         string
	DBPath          string
	ImagesDir       string
	SecureStorePath string
	SecureStoreKey  string

	SMS SMSConfig
}

type SMSConfig struct {
	GatewayURL string
	AuthToken  string
	Sender     string
	TimeoutSec int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	dataDir := getenv("REPARO_DATA_DIR", ".")

	cfg := Config{
		AppName:         getenv("APP_SERVICE", "reparo"),
		AppVersion:      getenv("APP_VERSION", "0.1.0"),
		Environment:     getenv("ENVIRONMENT", "development"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		DataDir:         dataDir,
		DBPath:          getenv("REPARO_DB_PATH", filepath.Join(dataDir, "reparo.db")),
		ImagesDir:       getenv("REPARO_IMAGES_DIR", filepath.Join(dataDir, "images")),
		SecureStorePath: getenv("REPARO_SECURE_STORE_PATH", filepath.Join(dataDir, "credentials.bin")),
		SecureStoreKey:  strings.TrimSpace(getenv("REPARO_SECURE_STORE_KEY", "")),
		SMS: SMSConfig{
			GatewayURL: strings.TrimSpace(getenv("SMS_GATEWAY_URL", "")),
			AuthToken:  strings.TrimSpace(getenv("SMS_GATEWAY_TOKEN", "")),
			Sender:     getenv("SMS_SENDER", "reparo"),
			TimeoutSec: getenvInt("SMS_TIMEOUT_SECONDS", 10),
		},
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
