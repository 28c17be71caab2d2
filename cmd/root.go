// Package cmd holds the flags, config loading and logger setup shared by executables.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/config/presets"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/registry"
	"github.com/forwardblock/go-forwardblock/templates/transfer"
)

var defaults = config.DefaultConfig()

// AddCommands adds the persistent flags every executable understands.
func AddCommands(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	fs.StringP("config", "c", "", "load configuration from file")
	fs.String("log-encoder", config.ConsoleLogEncoder, "log encoder, console or json")
	fs.String("log-level", "info", "log level")
	fs.String("chain-id", defaults.ChainID, "chain id (64 hex characters)")
	fs.Int("fork-id", defaults.ForkID, "fork id (0 to 255)")
	fs.Int("max-block-size", defaults.MaxBlockSize, "maximum encoded block size in bytes")
	fs.Bool("debug", defaults.Debug, "log collaborator errors hidden behind protocol errors")
}

// flag name to config key.
var flagKeys = map[string]string{
	"log-encoder":    "logging.log-encoder",
	"log-level":      "logging.level",
	"chain-id":       "chain-id",
	"fork-id":        "fork-id",
	"max-block-size": "max-block-size",
	"debug":          "debug",
}

// bindFlags binds the flags set on the command line. Unset flags keep the values
// of the preset and the config file.
func bindFlags(fs *pflag.FlagSet, vip *viper.Viper) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = vip.BindPFlag(key, f)
	})
	return err
}

// LoadConfig builds the config from the preset, then the config file, then the flags of cmd.
func LoadConfig(cmd *cobra.Command, vip *viper.Viper) (*config.Config, error) {
	fs := cmd.Flags()
	if err := bindFlags(fs, vip); err != nil {
		return nil, err
	}
	if err := vip.BindPFlag("preset", fs.Lookup("preset")); err != nil {
		return nil, err
	}
	if err := vip.BindPFlag("config", fs.Lookup("config")); err != nil {
		return nil, err
	}
	base := config.DefaultConfig()
	if name := vip.GetString("preset"); name != "" {
		preset, err := presets.Get(name)
		if err != nil {
			return nil, err
		}
		base = preset
	}
	conf, err := config.LoadConfig(vip.GetString("config"), vip, base)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	types.SetAddressHRP(conf.NetworkHRP)
	return conf, nil
}

// NewLogger builds the executable logger writing to stderr.
func NewLogger(conf config.LoggerConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if conf.Level != "" {
		var err error
		if level, err = zap.ParseAtomicLevel(conf.Level); err != nil {
			return nil, err
		}
	}
	var encoder zapcore.Encoder
	switch conf.Encoder {
	case config.JSONLogEncoder:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case config.ConsoleLogEncoder, "":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log encoder %q", conf.Encoder)
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)), nil
}

// NewProtocol returns a protocol context with the built-in transaction handlers registered.
func NewProtocol(conf *config.Config, logger *zap.Logger) (*core.Protocol, error) {
	reg := registry.New(conf)
	if err := transfer.Register(reg, transfer.New(conf)); err != nil {
		return nil, err
	}
	return &core.Protocol{Config: conf, Flags: reg, Logger: logger}, nil
}
