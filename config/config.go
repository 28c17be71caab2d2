// Package config contains the protocol parameters shared by every codec and validation step.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/forwardblock/go-forwardblock/common/types"
)

const (
	defaultConfigFileName = "./config.toml"

	// ConsoleLogEncoder uses human readable text format.
	ConsoleLogEncoder = "console"
	// JSONLogEncoder uses JSON format.
	JSONLogEncoder = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid protocol config")

// Config holds the protocol parameters. It is passed explicitly into every codec call
// so that limits can change between protocol versions.
type Config struct {
	// ChainID is the 64 hex character network identifier mixed into signing pre-images.
	ChainID string `mapstructure:"chain-id"`
	// ForkID is the 1-byte fork identifier mixed into signing pre-images.
	ForkID int `mapstructure:"fork-id"`

	MaxBlockSize     int `mapstructure:"max-block-size"`
	MaxLedgerEntries int `mapstructure:"max-ledger-entries"`
	MaxMemoLength    int `mapstructure:"max-memo-length"`
	MaxArbitraryData int `mapstructure:"max-arbitrary-data"`

	// Debug enables logging of collaborator errors that are otherwise swallowed.
	Debug bool `mapstructure:"debug"`

	NetworkHRP string `mapstructure:"network-hrp"`

	// FlagActivations overrides the activation height of transaction flags by name.
	FlagActivations map[string]uint64 `mapstructure:"flag-activations"`

	// SigCacheSize is the number of verified signatures remembered by the account registry.
	SigCacheSize int `mapstructure:"sig-cache-size"`

	LOGGING LoggerConfig `mapstructure:"logging"`
}

// LoggerConfig configures the zap logger built by executables.
type LoggerConfig struct {
	Encoder string `mapstructure:"log-encoder"`
	Level   string `mapstructure:"level"`
}

// DefaultConfig returns the mainnet parameters.
func DefaultConfig() Config {
	return MainnetConfig()
}

// Chain returns the parsed chain id.
func (c *Config) Chain() (types.ChainID, error) {
	return types.ParseChainID(c.ChainID)
}

// Validate checks that every parameter is usable by the codecs.
func (c *Config) Validate() error {
	if _, err := c.Chain(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ForkID < 0 || c.ForkID > types.MaxForkID {
		return fmt.Errorf("%w: fork id %d out of range", ErrInvalidConfig, c.ForkID)
	}
	if c.MaxBlockSize <= 0 {
		return fmt.Errorf("%w: max block size must be positive", ErrInvalidConfig)
	}
	if c.MaxLedgerEntries <= 0 {
		return fmt.Errorf("%w: max ledger entries must be positive", ErrInvalidConfig)
	}
	if c.MaxMemoLength < 0 || c.MaxMemoLength > math.MaxUint8 {
		return fmt.Errorf("%w: max memo length %d does not fit a 1-byte prefix", ErrInvalidConfig, c.MaxMemoLength)
	}
	if c.MaxArbitraryData < 0 || c.MaxArbitraryData > math.MaxUint16 {
		return fmt.Errorf("%w: max arbitrary data %d does not fit a 2-byte prefix", ErrInvalidConfig, c.MaxArbitraryData)
	}
	return nil
}

// ActivationHeight returns the configured activation height override for a flag name.
func (c *Config) ActivationHeight(flag string) (uint64, bool) {
	h, ok := c.FlagActivations[flag]
	return h, ok
}

// LoadConfig reads the config file (if any) into vip and decodes it on top of base.
func LoadConfig(fileLocation string, vip *viper.Viper, base Config) (*Config, error) {
	if fileLocation != "" {
		vip.SetConfigFile(fileLocation)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %w", err)
		}
	}
	conf := base
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := vip.Unmarshal(&conf, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
