package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set the path to look for the config file in
	viper.AddConfigPath(path)
	// Set the name of the config file (without extension)
	viper.SetConfigName("config")
	// Set the type of the config file
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	// database.path -> DATABASE_PATH
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.path", "data/training.db")

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// If config file not found, continue (might rely solely on env vars),
	// but log it or handle differently if the file is mandatory.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; defaults and env vars still apply
		err = nil
	} else if err != nil {
		// Some other error occurred reading the config file
		return // Return the error
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil // Return the populated config struct and nil error if successful
}
