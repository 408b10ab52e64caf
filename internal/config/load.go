package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/sitescout-io/sitescout/internal/constants"
	"github.com/sitescout-io/sitescout/internal/errors"
)

// newViperInstance creates a Viper instance with standard sitescout
// configuration: defaults, the SITESCOUT_ environment prefix, and a key
// replacer so SITESCOUT_SCOUT_BATCH_SIZE maps to scout.batch_size.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SITESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (SITESCOUT_* prefix)
//  2. Global config (~/.sitescout/config.yaml)
//  3. Built-in defaults
//
// The function returns an error only for actual configuration problems,
// not for a missing config file (which is the common case).
//
// The context parameter carries the logger; config file reads are fast
// local I/O and are not cancellable.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("llm.model", cfg.LLM.Model).
		Int("scout.batch_size", cfg.Scout.BatchSize).
		Dur("scout.batch_pause", cfg.Scout.BatchPause).
		Str("report.path", cfg.Report.Path).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file
// (~/.sitescout/config.yaml). Returns nil if the file doesn't exist or the
// home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, ok := globalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read global config")
		}
	}
	return nil
}

// globalConfigPathIfExists returns the global config path and whether the
// file exists. SITESCOUT_HOME overrides the default ~/.sitescout location.
func globalConfigPathIfExists() (string, bool) {
	home := os.Getenv("SITESCOUT_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		home = filepath.Join(userHome, constants.ScoutHome)
	}

	path := filepath.Join(home, "config.yaml")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
