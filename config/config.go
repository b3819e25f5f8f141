// Package config holds the process-wide settings of an octname run. Flag
// values land in the package variables before any command executes; the
// viper-backed config file supplies defaults for whatever the flags leave
// empty.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// Network is the chain selected by --network or the config file.
	Network string

	// From identifies the account used to sign registrations: an address,
	// an account description or anything the account book can fuzzy-match.
	From string

	// KeyFile optionally points at a file holding the base64 private key,
	// bypassing the account records.
	KeyFile string

	// SkipConfirm suppresses the interactive confirmation before
	// broadcasting a registration.
	SkipConfirm bool

	// DontBroadcast builds and signs the registration tx but stops before
	// sending it, printing the signed payload instead.
	DontBroadcast bool
)

// File is the config file explicitly chosen via --config, empty for the
// default lookup.
var File string

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "octname")
}

// Load reads the config file and fills in every setting the flags left
// empty. A missing config file is not an error: flags and defaults carry
// the run. An unreadable file that was explicitly named via --config is
// reported.
func Load() error {
	viper.SetDefault("network", "mainnet")
	viper.SetDefault("from", "")
	viper.SetDefault("keyfile", "")

	if File != "" {
		viper.SetConfigFile(File)
	} else {
		viper.AddConfigPath(defaultConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	var loadErr error
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && File != "" {
			loadErr = err
		}
	}

	if Network == "" {
		Network = viper.GetString("network")
	}
	if From == "" {
		From = viper.GetString("from")
	}
	if KeyFile == "" {
		KeyFile = viper.GetString("keyfile")
	}
	return loadErr
}

// Write persists the current settings as the default config file and
// returns its path.
func Write() (string, error) {
	dir := defaultConfigDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.yaml")
	viper.Set("network", Network)
	viper.Set("from", From)
	viper.Set("keyfile", KeyFile)
	if err := viper.WriteConfigAs(path); err != nil {
		return "", err
	}
	return path, nil
}
