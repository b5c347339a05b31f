// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	UserAgent            string
	RedditBaseURL        string
	RequestTimeout       time.Duration
	ServerPort           string
	ReadTimeout          time.Duration
	WriteTimeout         time.Duration
	DefaultListingLimit  int
	MaxListingLimit      int
	MaxCommentLimit      int
	MaxUserLimit         int
	MaxToolOutputRunes   int
	FingerprintTransport bool
	ProxyURL             string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	proxyURL := os.Getenv("REDDIT_PROXY_URL")
	if proxyURL != "" {
		if _, err := url.Parse(proxyURL); err != nil {
			return nil, fmt.Errorf("invalid proxy URL %s: %w", proxyURL, err)
		}
	}

	userAgent := os.Getenv("REDDIT_USER_AGENT")
	if userAgent == "" {
		// Reddit requires a descriptive User-Agent on unauthenticated requests.
		userAgent = "reddit-tools/1.0 (AI agent Reddit client)"
	}

	return &Config{
		UserAgent:            userAgent,
		RedditBaseURL:        getEnv("REDDIT_BASE_URL", "https://www.reddit.com"),
		RequestTimeout:       getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		DefaultListingLimit:  getEnvInt("TOOLS_DEFAULT_LISTING_LIMIT", 10),
		MaxListingLimit:      getEnvInt("TOOLS_MAX_LISTING_LIMIT", 25),
		MaxCommentLimit:      getEnvInt("TOOLS_MAX_COMMENT_LIMIT", 50),
		MaxUserLimit:         getEnvInt("TOOLS_MAX_USER_LIMIT", 25),
		MaxToolOutputRunes:   getEnvInt("TOOLS_MAX_OUTPUT_RUNES", 30*1024),
		FingerprintTransport: getEnvBool("REDDIT_TLS_FINGERPRINT", false),
		ProxyURL:             proxyURL,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
