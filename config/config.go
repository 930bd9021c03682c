package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port           string
	DataDir        string
	PexelsAPIKey   string
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
}

// Load reads the environment through viper with sane defaults. A .env
// file, if present, is loaded by main before this runs.
func Load() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PEXELS_API_KEY", "")
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.AutomaticEnv()

	return &Config{
		Port:           viper.GetString("PORT"),
		DataDir:        viper.GetString("DATA_DIR"),
		PexelsAPIKey:   viper.GetString("PEXELS_API_KEY"),
		RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
		AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
	}
}

// DataFile resolves a collection file name inside the data directory.
func (c *Config) DataFile(name string) string {
	return filepath.Join(c.DataDir, name)
}
