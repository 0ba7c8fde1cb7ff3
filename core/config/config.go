package config

import (
	"reflect"
	"strings"

	"console-server/core/gateway"
	"console-server/core/logger"
	"console-server/core/server"
	"console-server/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application,
// divided into partial configurations per concern.
type Config struct {
	// Server holds the HTTP bind configuration.
	Server server.Config `mapstructure:"server"`
	// Gateway holds the connection parameters injected into the console.
	Gateway gateway.Config `mapstructure:"gateway"`
	// Storage holds configuration for the bundle object storage,
	// used by the fetch command only.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and an
// optional .env file in path. Defaults come from the struct tags;
// environment variables map onto nested keys (GATEWAY_TOKEN ->
// gateway.token).
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine; env vars alone also work.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	registerDefaults(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// registerDefaults walks the config struct and registers every field's
// 'default' tag with Viper under its mapstructure key. Registering the
// key (even with an empty default) is what makes AutomaticEnv pick the
// corresponding environment variable up.
func registerDefaults(v *viper.Viper, section any, prefix string) {
	t := reflect.TypeOf(section)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
