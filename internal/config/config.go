// Package config loads the application's configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/review-radar/internal/logger"
)

// Supported MCP transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// GitHubConfig holds the credential and identity used to query GitHub.
type GitHubConfig struct {
	Token    string
	Username string
	// BaseURL points at a GitHub Enterprise API, e.g. https://ghe.example.com/api/v3/.
	// Empty means github.com.
	BaseURL string
}

// ReviewConfig tunes the review queue query.
type ReviewConfig struct {
	DefaultLimit int
	Concurrency  int
}

// ServerConfig configures how the tool is served.
type ServerConfig struct {
	Port      string
	Transport string
}

// Config holds the application's configuration values.
type Config struct {
	GitHub  GitHubConfig
	Review  ReviewConfig
	Server  ServerConfig
	Logging logger.Config
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MCP_TRANSPORT", TransportStdio)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stderr")
	viper.SetDefault("REVIEW_DEFAULT_LIMIT", 10)
	viper.SetDefault("REVIEW_CONCURRENCY", 4)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	if viper.GetString("GITHUB_TOKEN") == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN must be set")
	}
	if viper.GetString("GITHUB_USERNAME") == "" {
		return nil, fmt.Errorf("GITHUB_USERNAME must be set")
	}

	transport := strings.ToLower(viper.GetString("MCP_TRANSPORT"))
	if transport != TransportStdio && transport != TransportHTTP {
		return nil, fmt.Errorf("unsupported MCP_TRANSPORT %q, expected %q or %q", transport, TransportStdio, TransportHTTP)
	}

	concurrency := viper.GetInt("REVIEW_CONCURRENCY")
	if concurrency <= 0 {
		slog.Warn("invalid review concurrency, defaulting to 1", "provided", concurrency)
		concurrency = 1
	}

	return &Config{
		GitHub: GitHubConfig{
			Token:    viper.GetString("GITHUB_TOKEN"),
			Username: viper.GetString("GITHUB_USERNAME"),
			BaseURL:  viper.GetString("GITHUB_BASE_URL"),
		},
		Review: ReviewConfig{
			DefaultLimit: viper.GetInt("REVIEW_DEFAULT_LIMIT"),
			Concurrency:  concurrency,
		},
		Server: ServerConfig{
			Port:      viper.GetString("SERVER_PORT"),
			Transport: transport,
		},
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
			Output: strings.ToLower(viper.GetString("LOG_OUTPUT")),
		},
	}, nil
}
