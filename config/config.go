// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	configDir      = pflag.String("config", ".", "Directory to look for config.toml in")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(*configDir)

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.ttl_minutes", "jwt_ttl_minutes")

	v.BindEnv("database.dsn", "database_dsn")
	v.BindEnv("database.sqlite_path", "database_sqlite_path")

	v.BindEnv("upload.max_size", "upload_max_size")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)

	v.SetDefault("jwt.ttl_minutes", 30)

	v.SetDefault("database.sqlite_path", "documents.db")

	v.SetDefault("upload.max_size", 25)

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional, everything can come from the
		// environment
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("No JWT secret is configured and the server refuses to run with a built-in one. Here's a freshly generated secret:\n\n" + genSecret() + "\n\nSet it as the jwt_secret environment variable or under jwt.secret in config.toml.")
		return errors.New("jwt.secret is required")
	}

	if v.GetInt("jwt.ttl_minutes") <= 0 {
		return errors.New("jwt.ttl_minutes must be bigger than 0")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
