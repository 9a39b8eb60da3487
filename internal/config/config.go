package config

import (
	"fmt"
	"os"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Quote    QuoteConfig
	Refresh  RefreshConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// QuoteConfig holds configuration for the upstream quote provider.
//
// The API key is read from QUOTE_API_KEY. Alternatively an encrypted key can
// be supplied via QUOTE_API_KEY_ENCRYPTED together with a fernet key in
// QUOTE_FERNET_KEY, so the plaintext token never has to live in an env file.
type QuoteConfig struct {
	APIKey  string
	BaseURL string
}

// RefreshConfig holds configuration for the background price refresh job.
type RefreshConfig struct {
	// Schedule is a cron expression. Empty disables the job.
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Quote: QuoteConfig{
			BaseURL: getEnv("QUOTE_BASE_URL", "https://finnhub.io/api/v1"),
		},
		Refresh: RefreshConfig{
			Schedule: getEnv("PRICE_REFRESH_SCHEDULE", "@every 15m"),
		},
	}

	apiKey, err := loadQuoteAPIKey()
	if err != nil {
		return nil, err
	}
	config.Quote.APIKey = apiKey

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// loadQuoteAPIKey resolves the quote provider API key. A plaintext
// QUOTE_API_KEY wins; otherwise QUOTE_API_KEY_ENCRYPTED is decrypted with
// QUOTE_FERNET_KEY.
func loadQuoteAPIKey() (string, error) {
	if key := os.Getenv("QUOTE_API_KEY"); key != "" {
		return key, nil
	}

	encrypted := os.Getenv("QUOTE_API_KEY_ENCRYPTED")
	if encrypted == "" {
		return "", nil
	}

	fernetKey := os.Getenv("QUOTE_FERNET_KEY")
	if fernetKey == "" {
		return "", fmt.Errorf("QUOTE_API_KEY_ENCRYPTED is set but QUOTE_FERNET_KEY is missing")
	}

	keys, err := fernet.DecodeKeys(fernetKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode QUOTE_FERNET_KEY: %w", err)
	}

	// TTL 0: the stored token does not expire.
	plaintext := fernet.VerifyAndDecrypt([]byte(encrypted), 0, keys)
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt QUOTE_API_KEY_ENCRYPTED")
	}

	return string(plaintext), nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
