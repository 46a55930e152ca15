package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const envPrefix = "PASSCHECK"

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Bcrypt  BcryptConfig  `mapstructure:"bcrypt"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type BcryptConfig struct {
	Cost int `mapstructure:"cost"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// NewViper returns a viper instance with defaults, search paths and env binding set up.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("bcrypt.cost", bcrypt.DefaultCost)
	v.SetDefault("metrics.namespace", "passcheck")
	v.SetDefault("metrics.subsystem", "policy")

	v.SetConfigName("passcheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.config/passcheck")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig reads the config file if one exists and unmarshals the result. A missing
// file is not an error; defaults and environment variables still apply.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Bcrypt.Cost < bcrypt.MinCost || config.Bcrypt.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt.cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, config.Bcrypt.Cost)
	}

	return &config, nil
}
