package config

import (
	"reflect"
	"strings"

	"kitinventory/core/catalog"
	"kitinventory/core/database"
	"kitinventory/core/logger"
	"kitinventory/core/server"
	"kitinventory/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InventoryConfig holds configuration for the inventory domain.
type InventoryConfig struct {
	// System is the collectible system name acquisitions are recorded under.
	System string `mapstructure:"system" default:"fischertechnik"`
}

// CacheConfig holds configuration for the parts-list cache.
type CacheConfig struct {
	// Enabled toggles the database-backed parts-list cache.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// TTLHours is how long cached parts lists stay fresh. Zero disables expiry.
	TTLHours int `mapstructure:"ttl_hours" default:"168"`
}

// ThumbnailConfig holds configuration for the thumbnail mirror.
type ThumbnailConfig struct {
	// Enabled toggles the object-storage thumbnail mirror.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// ImageHost is the base URL the catalog serves original images from.
	ImageHost string `mapstructure:"image_host" default:"http://localhost:3000"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Catalog holds configuration for the remote part catalog service.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Inventory holds configuration for the inventory domain.
	Inventory InventoryConfig `mapstructure:"inventory"`
	// Cache holds configuration for the parts-list cache.
	Cache CacheConfig `mapstructure:"cache"`
	// Thumbnail holds configuration for the thumbnail mirror.
	Thumbnail ThumbnailConfig `mapstructure:"thumbnail"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

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

		// Nested structs recurse; leaves register their default
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
