package config

import (
	"log"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	Cache CacheConfig
	Log   LogConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type APIConfig struct {
	// BaseURL is the backend root; Prefix is the versioned path all resource
	// calls are made under.
	BaseURL        string
	Prefix         string
	RequestTimeout time.Duration
	// EmailTimeout bounds the invoice email dispatch call, which renders a
	// PDF and talks SMTP on the backend side.
	EmailTimeout      time.Duration
	RequestsPerSecond float64
	Burst             int
}

type CacheConfig struct {
	Path string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "invoicer")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("API_PREFIX", "/api/v1")
	viper.SetDefault("API_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("API_EMAIL_TIMEOUT_SECONDS", 10)
	viper.SetDefault("API_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("API_BURST", 20)
	viper.SetDefault("CACHE_PATH", "invoicer-cache.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	return &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL:           viper.GetString("API_BASE_URL"),
			Prefix:            viper.GetString("API_PREFIX"),
			RequestTimeout:    time.Duration(viper.GetInt("API_REQUEST_TIMEOUT_SECONDS")) * time.Second,
			EmailTimeout:      time.Duration(viper.GetInt("API_EMAIL_TIMEOUT_SECONDS")) * time.Second,
			RequestsPerSecond: viper.GetFloat64("API_REQUESTS_PER_SECOND"),
			Burst:             viper.GetInt("API_BURST"),
		},
		Cache: CacheConfig{
			Path: viper.GetString("CACHE_PATH"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}
}

// Origin returns the scheme://host part of the API base URL. Login messages
// from any other origin are ignored.
func (c *APIConfig) Origin() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c.BaseURL
	}
	return u.Scheme + "://" + u.Host
}
