package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Gemini   GeminiConfig
	Download DownloadConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GeminiConfig holds settings for the Gemini model API.
type GeminiConfig struct {
	APIKey          string `mapstructure:"api_key"`
	VisionModel     string `mapstructure:"vision_model"`
	TextModel       string `mapstructure:"text_model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

// Configured reports whether an API credential is present.
func (g *GeminiConfig) Configured() bool {
	return g.APIKey != ""
}

// DownloadConfig holds settings for the bill image download.
type DownloadConfig struct {
	TimeoutSecs int   `mapstructure:"timeout_secs"`
	MaxBytes    int64 `mapstructure:"max_bytes"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the BILLSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.vision_model", "gemini-2.5-flash")
	v.SetDefault("gemini.text_model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout_secs", 120)
	v.SetDefault("gemini.max_output_tokens", 16384)

	// Download defaults
	v.SetDefault("download.timeout_secs", 30)
	v.SetDefault("download.max_bytes", 20*1024*1024)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "BILLSCAN_SERVER_PORT",
		"server.read_timeout":      "BILLSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "BILLSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":       "BILLSCAN_SERVER_ENVIRONMENT",
		"log.level":                "BILLSCAN_LOG_LEVEL",
		"log.format":               "BILLSCAN_LOG_FORMAT",
		"gemini.api_key":           "BILLSCAN_GEMINI_API_KEY",
		"gemini.vision_model":      "BILLSCAN_GEMINI_VISION_MODEL",
		"gemini.text_model":        "BILLSCAN_GEMINI_TEXT_MODEL",
		"gemini.timeout_secs":      "BILLSCAN_GEMINI_TIMEOUT_SECS",
		"gemini.max_output_tokens": "BILLSCAN_GEMINI_MAX_OUTPUT_TOKENS",
		"download.timeout_secs":    "BILLSCAN_DOWNLOAD_TIMEOUT_SECS",
		"download.max_bytes":       "BILLSCAN_DOWNLOAD_MAX_BYTES",
		"cors.allowed_origins":     "BILLSCAN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	// Legacy credential variable from the original deployment.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && os.Getenv("BILLSCAN_GEMINI_API_KEY") == "" {
		v.Set("gemini.api_key", key)
	}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:          v.GetString("gemini.api_key"),
		VisionModel:     v.GetString("gemini.vision_model"),
		TextModel:       v.GetString("gemini.text_model"),
		TimeoutSecs:     v.GetInt("gemini.timeout_secs"),
		MaxOutputTokens: v.GetInt("gemini.max_output_tokens"),
	}
	cfg.Download = DownloadConfig{
		TimeoutSecs: v.GetInt("download.timeout_secs"),
		MaxBytes:    v.GetInt64("download.max_bytes"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
