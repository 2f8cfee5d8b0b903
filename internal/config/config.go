package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rtstage/rtstage/internal/branding"
	"github.com/spf13/viper"
)

// Option keys, as used in the config file and (upper-cased, prefixed) in
// the environment: strategy ↔ RTSTAGE_STRATEGY.
const (
	KeyStrategy  = "strategy"
	KeyLinkTest  = "link_test"
	KeyVerbose   = "verbose"
	KeyEmitRerun = "emit_rerun"
)

// DefaultStrategy selects the query locator when RUSTC is set and the
// direct locator otherwise.
const DefaultStrategy = "auto"

// Options are the tool's own settings.
type Options struct {
	Strategy  string
	LinkTest  bool
	Verbose   bool
	EmitRerun bool
}

// Config is everything one staging run needs. It is not modified after Load.
type Config struct {
	Env     Context
	Options Options
	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// LoadOptions controls where Load looks for values.
type LoadOptions struct {
	// ConfigFile is an optional YAML file with option keys.
	ConfigFile string
	// EnvFile is an optional dotenv file. Its values never override the
	// process environment.
	EnvFile string
	// Overrides are explicitly set flag values keyed by option key.
	Overrides map[string]interface{}
}

// Load assembles a Config. Precedence, highest first: overrides, process
// environment, config file, env file, defaults.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())

	v.SetDefault(KeyStrategy, DefaultStrategy)
	v.SetDefault(KeyLinkTest, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyEmitRerun, false)

	for _, key := range Keys {
		if err := v.BindEnv(strings.ToLower(key), key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	for _, key := range []string{KeyStrategy, KeyLinkTest, KeyVerbose, KeyEmitRerun} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if opts.EnvFile != "" {
		if err := applyEnvFile(v, opts.EnvFile); err != nil {
			return nil, err
		}
	}

	if opts.ConfigFile != "" {
		result, err := ValidateFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, &ValidationError{Path: opts.ConfigFile, Issues: result.Issues}
		}
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", opts.ConfigFile, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	values := make(map[string]string, len(Keys))
	for _, key := range Keys {
		if s := v.GetString(strings.ToLower(key)); s != "" {
			values[key] = s
		}
	}

	return &Config{
		Env: NewContext(values),
		Options: Options{
			Strategy:  v.GetString(KeyStrategy),
			LinkTest:  v.GetBool(KeyLinkTest),
			Verbose:   v.GetBool(KeyVerbose),
			EmitRerun: v.GetBool(KeyEmitRerun),
		},
		ConfigFile: opts.ConfigFile,
	}, nil
}

// applyEnvFile registers dotenv values as defaults so the real environment
// and the config file take precedence.
func applyEnvFile(v *viper.Viper, path string) error {
	entries, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	prefix := branding.EnvPrefix() + "_"
	for name, value := range entries {
		switch {
		case isBuildVar(name):
			v.SetDefault(strings.ToLower(name), value)
		case strings.HasPrefix(name, prefix):
			v.SetDefault(strings.ToLower(strings.TrimPrefix(name, prefix)), value)
		}
	}
	return nil
}

func isBuildVar(name string) bool {
	for _, key := range Keys {
		if key == name {
			return true
		}
	}
	return false
}
