package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chinmay1088/qbtc/api"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config defaults
const (
	DefaultNodeURL      = "http://127.0.0.1:9556/"
	DefaultTimeout      = api.DefaultTimeout
	DefaultMaxReadBytes = api.DefaultMaxReadBytes
	minTimeout          = time.Millisecond

	configDirName  = ".qbtc"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "QBTC"
)

// config keys
const (
	keyURL          = "url"
	keyTimeout      = "timeout"
	keyMaxReadBytes = "max-read-bytes"
	keyVerbose      = "verbose"
	keyQuiet        = "quiet"
)

var cfg = viper.New()

// getConfigDir returns ~/.qbtc
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// loadConfig merges flags, environment and the config file into cfg
func loadConfig(flags *pflag.FlagSet) error {
	cfg.SetDefault(keyURL, DefaultNodeURL)
	cfg.SetDefault(keyTimeout, DefaultTimeout)
	cfg.SetDefault(keyMaxReadBytes, DefaultMaxReadBytes)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if flags != nil {
		if err := cfg.BindPFlags(flags); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	configDir, err := getConfigDir()
	if err != nil {
		// No home directory, run on flags and environment only
		return checkTimeout()
	}

	cfg.SetConfigName(configFileName)
	cfg.SetConfigType(configFileType)
	cfg.AddConfigPath(configDir)
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return checkTimeout()
}

// checkTimeout rejects timeouts given without a unit, which viper reads as nanoseconds
func checkTimeout() error {
	timeout := cfg.GetDuration(keyTimeout)
	if timeout < minTimeout {
		return fmt.Errorf("invalid timeout %q: must be at least %s, with a unit such as 30s or 2m", cfg.GetString(keyTimeout), minTimeout)
	}
	return nil
}

// getConn builds the node connection from the effective configuration
func getConn() api.Conn {
	return api.Conn{
		URL:          cfg.GetString(keyURL),
		Timeout:      cfg.GetDuration(keyTimeout),
		MaxReadBytes: cfg.GetInt64(keyMaxReadBytes),
	}
}

// getLogger returns a console logger on stderr; debug with --verbose, off with --quiet
func getLogger() zerolog.Logger {
	if cfg.GetBool(keyQuiet) {
		return zerolog.Nop()
	}

	level := zerolog.WarnLevel
	if cfg.GetBool(keyVerbose) {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// newClient creates an API client for the configured node
func newClient() *api.Client {
	return api.NewClient(getConn(), api.WithLogger(getLogger()))
}
