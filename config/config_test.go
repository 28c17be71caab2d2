package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	conf := DefaultConfig()
	require.NoError(t, conf.Validate())
	chain, err := conf.Chain()
	require.NoError(t, err)
	require.Equal(t, conf.ChainID, chain.Hex())
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		modify func(*Config)
	}{
		{"bad chain id", func(c *Config) { c.ChainID = "abc" }},
		{"negative fork", func(c *Config) { c.ForkID = -1 }},
		{"fork too large", func(c *Config) { c.ForkID = 256 }},
		{"zero block size", func(c *Config) { c.MaxBlockSize = 0 }},
		{"zero ledger entries", func(c *Config) { c.MaxLedgerEntries = 0 }},
		{"memo too long", func(c *Config) { c.MaxMemoLength = 256 }},
		{"data too large", func(c *Config) { c.MaxArbitraryData = 1 << 16 }},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			conf := DefaultConfig()
			tc.modify(&conf)
			require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
fork-id = 3
max-memo-length = 64
debug = true

[flag-activations]
transfer = 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	conf, err := LoadConfig(path, viper.New(), DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 3, conf.ForkID)
	require.Equal(t, 64, conf.MaxMemoLength)
	require.True(t, conf.Debug)
	h, ok := conf.ActivationHeight("transfer")
	require.True(t, ok)
	require.Equal(t, uint64(100), h)
	require.Equal(t, DefaultConfig().ChainID, conf.ChainID)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("fork-id = 300\n"), 0o600))
	_, err := LoadConfig(path, viper.New(), DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), viper.New(), DefaultConfig())
	require.Error(t, err)
}
