package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"nbcli/core/journal"
	"nbcli/core/logger"
	"nbcli/core/netbox"
	"nbcli/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "nbcli.yaml"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// NetBox holds the API endpoint and credentials.
	NetBox netbox.Config `mapstructure:"netbox"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Journal holds configuration for the action journal database.
	Journal journal.Config `mapstructure:"journal"`
	// Storage holds configuration for export uploads (S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables, the .env file
// and the optional nbcli.yaml in path. Environment variables win.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigFile(filepath.Join(path, FileName))
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, err
	}

	// Map environment variables to nested keys (e.g. NETBOX_URL -> netbox.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Squashed structs share the parent prefix
		if strings.HasSuffix(tag, ",squash") {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), prefix)
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
