package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, sourced from the
// environment.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	SuperAdminEmail                  string `mapstructure:"SUPER_ADMIN_EMAIL"`
}

// LoadConfig loads configuration from environment variables using Viper.
//
// FIREBASE_PROJECT_ID is required. Credentials may come from
// GOOGLE_APPLICATION_CREDENTIALS (file path) or
// FIREBASE_SERVICE_ACCOUNT_JSON_BASE64; with neither set the Admin SDK
// falls back to Application Default Credentials.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")

	for _, key := range []string{
		"PORT",
		"GIN_MODE",
		"FIREBASE_PROJECT_ID",
		"GOOGLE_APPLICATION_CREDENTIALS",
		"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
		"CLIENT_URL",
		"SUPER_ADMIN_EMAIL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}

	return &cfg, nil
}
