// Package config loads runtime settings from a config file and environment
// variables for the network collaborators and the CLI.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Network identifies an Algorand network.
type Network string

const (
	NetworkLocalnet Network = "localnet"
	NetworkBetanet  Network = "betanet"
	NetworkTestnet  Network = "testnet"
	NetworkMainnet  Network = "mainnet"
)

// Provider identifies an algod API provider.
type Provider string

const (
	ProviderLocalhost Provider = "localhost"
	ProviderAlgoNode  Provider = "algonode"
	ProviderCustom    Provider = "custom"
)

// Settings holds runtime configuration.
type Settings struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`

	Network  Network  `mapstructure:"network"`
	Provider Provider `mapstructure:"provider"`

	// AlgodURL is only consulted when Provider is "custom".
	AlgodURL   string `mapstructure:"algod_url"`
	AlgodToken string `mapstructure:"algod_token"`

	NFTStorageAPIKey     string `mapstructure:"nft_storage_api_key"`
	DispenserAccessToken string `mapstructure:"dispenser_access_token"`

	// IPFSGateways overrides the built-in public gateway list when set.
	IPFSGateways []string `mapstructure:"ipfs_gateways"`
}

var validNetworks = map[Network]bool{
	NetworkLocalnet: true,
	NetworkBetanet:  true,
	NetworkTestnet:  true,
	NetworkMainnet:  true,
}

var validProviders = map[Provider]bool{
	ProviderLocalhost: true,
	ProviderAlgoNode:  true,
	ProviderCustom:    true,
}

// Load reads settings from the given config file (optional) and the
// environment. Environment variables use the AB_ prefix, e.g. AB_NETWORK.
func Load(configFile string, envPath string) (*Settings, error) {
	v := configureViper(configFile, envPath)

	v.SetDefault("network", string(NetworkLocalnet))
	v.SetDefault("provider", string(ProviderLocalhost))
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !validNetworks[settings.Network] {
		return nil, fmt.Errorf("invalid network %q", settings.Network)
	}
	if !validProviders[settings.Provider] {
		return nil, fmt.Errorf("invalid provider %q", settings.Provider)
	}
	if settings.Provider == ProviderCustom && settings.AlgodURL == "" {
		return nil, errors.New("algod_url is required when provider is custom")
	}

	return &settings, nil
}

// configureViper returns a viper instance with the config file and environment
// variables set.
func configureViper(configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("AB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no
// config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"network",
		"provider",
		"algod_url",
		"algod_token",
		"nft_storage_api_key",
		"dispenser_access_token",
		"ipfs_gateways",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from .env files under envPath.
func loadEnv(envPath string) {
	if envPath == "" {
		envPath = "."
	}

	for _, envFile := range []string{".env", ".env.local"} {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}
