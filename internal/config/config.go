package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Auth struct {
		JWTSecret       string `mapstructure:"jwt_secret"`
		TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
	} `mapstructure:"auth"`
	App struct {
		RecentActivityLimit int `mapstructure:"recent_activity_limit"`
		MaxResultsLimit     int `mapstructure:"max_results_limit"`
		ImportMaxRows       int `mapstructure:"import_max_rows"`
	} `mapstructure:"app"`
	TTS struct {
		Endpoint       string `mapstructure:"endpoint"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"tts"`
}

// LoadConfig reads configs/config.yaml (searched in path, then the working
// directory) and applies APP_-prefixed environment overrides.
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("tts.endpoint", "TTS_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Missing file is fine: env vars and defaults still apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Auth.TokenTTLMinutes <= 0 {
		cfg.Auth.TokenTTLMinutes = DefaultTokenTTLMinutes
	}
	if cfg.App.RecentActivityLimit <= 0 {
		cfg.App.RecentActivityLimit = DefaultRecentActivityLimit
	}
	if cfg.App.MaxResultsLimit <= 0 {
		cfg.App.MaxResultsLimit = DefaultMaxResultsLimit
	}
	if cfg.App.ImportMaxRows <= 0 {
		cfg.App.ImportMaxRows = DefaultImportMaxRows
	}
	if cfg.TTS.TimeoutSeconds <= 0 {
		cfg.TTS.TimeoutSeconds = DefaultTTSTimeoutSeconds
	}

	return &cfg, nil
}
