// Package config loads typed runtime configuration from environment
// variables and an optional config.yaml.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Port        string        `mapstructure:"port"`
	MongoURI    string        `mapstructure:"mongo_uri"`
	DBName      string        `mapstructure:"db_name"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	LogLevel    string        `mapstructure:"log_level"`
	LogPretty   bool          `mapstructure:"log_pretty"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
	SearchLimit int64         `mapstructure:"search_limit"`
}

// Load reads config.yaml if present, then lets environment variables
// (PORT, MONGO_URI, JWT_SECRET, ...) override it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal only sees keys viper already knows about, so every key is
	// bound explicitly; AutomaticEnv alone does not cover keys that lack a
	// default or a config-file entry.
	for _, key := range []string{
		"port", "mongo_uri", "db_name", "jwt_secret", "token_ttl",
		"log_level", "log_pretty", "cors_origins", "search_limit",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetDefault("port", "5000")
	v.SetDefault("db_name", "social-network")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("search_limit", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}
