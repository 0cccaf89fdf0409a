package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"theme-sync/core/idm"
	"theme-sync/core/ion"
	"theme-sync/core/logger"
	"theme-sync/core/plm"
	"theme-sync/core/scheduler"
	"theme-sync/core/server"
	"theme-sync/core/token"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// ION holds the API gateway location and tenant.
	ION ion.Config `mapstructure:"ion"`
	// Auth holds the OAuth2 client and service-account credentials.
	Auth token.Config `mapstructure:"auth"`
	// PLM holds PLM-specific settings.
	PLM plm.Config `mapstructure:"plm"`
	// IDM holds IDM-specific settings.
	IDM idm.Config `mapstructure:"idm"`
	// Schedule holds the optional cron-driven theme sync.
	Schedule scheduler.Config `mapstructure:"schedule"`
}

// LoadConfig reads settings from path in increasing precedence: struct tag
// defaults, an optional config.yaml, then the environment. A .env file in path
// is loaded into the environment first and overrides variables already set.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// AUTH_CLIENT_ID -> auth.client_id
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &config, nil
}

// bindValues walks the struct type of iface and registers every mapstructure
// key with its default tag. Keys without a default are still registered with
// an empty value so AutomaticEnv can resolve them during Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}
		key := strings.TrimPrefix(prefix+"."+name, ".")

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.Zero(field.Type).Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
