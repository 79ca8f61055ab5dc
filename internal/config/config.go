package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Gemini
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	// Storage
	UploadDir string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load reads configuration from the environment. GEMINI_API_KEY is
// deliberately not required here: its absence is reported per request as an
// operator-facing 500 by the upload handler, so the server still starts
// without it.
func Load() *Config {
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	viper.SetDefault("GEMINI_TIMEOUT", "60s")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("BASE_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	return &Config{
		GeminiAPIKey:  viper.GetString("GEMINI_API_KEY"),
		GeminiModel:   viper.GetString("GEMINI_MODEL"),
		GeminiTimeout: viper.GetDuration("GEMINI_TIMEOUT"),

		UploadDir: viper.GetString("UPLOAD_DIR"),

		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENVIRONMENT"),
		BaseURL:     viper.GetString("BASE_URL"),
	}
}
