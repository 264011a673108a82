package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// Config represents the utccheck.yaml configuration file.
type Config struct {
	FetchTimeout time.Duration `yaml:"fetch_timeout" validate:"gt=0"`
	DisplayLimit int           `yaml:"display_limit" validate:"gte=0"`
	UserAgent    string        `yaml:"user_agent"`
	TextOnly     bool          `yaml:"text_only"`
	Jobs         int           `yaml:"jobs" validate:"gte=1"`
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key, which is what the user wrote.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func defaultConfig() *Config {
	return &Config{
		FetchTimeout: DefaultFetchTimeout,
		DisplayLimit: DefaultDisplayLimit,
		UserAgent:    DefaultUserAgent,
		Jobs:         DefaultJobs,
	}
}

// loadConfig loads configuration from file, env vars, and CLI flags.
// Precedence: CLI flags > env vars > config file > defaults.
// A missing config file is only an error when its path was given explicitly.
func loadConfig(path string, explicit bool, flags *pflag.FlagSet) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, alerr.Wrap(alerr.ErrConfigParse, err, "failed to parse config file").
				WithFile(path, 0).
				WithHelp("durations are written like 10s or 1m30s")
		}
		cfg.UserAgent = expandEnvVars(cfg.UserAgent)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults
	default:
		return nil, alerr.Wrap(alerr.ErrConfigParse, err, "failed to read config file").
			WithFile(path, 0)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, flags); err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvFetchTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return alerr.Wrapf(alerr.ErrConfigInvalid, err, "%s is not a duration", EnvFetchTimeout).
				WithValue(v).
				WithHelp("use a value such as 10s or 500ms")
		}
		cfg.FetchTimeout = d
	}
	if v := os.Getenv(EnvDisplayLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return alerr.Wrapf(alerr.ErrConfigInvalid, err, "%s is not a number", EnvDisplayLimit).
				WithValue(v)
		}
		cfg.DisplayLimit = n
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.UserAgent = v
	}
	return nil
}

// applyFlags copies the flags that were set on the command line. Commands
// only register the flags they use, so any of them may be missing.
func applyFlags(cfg *Config, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	var err error
	if flags.Changed("timeout") {
		if cfg.FetchTimeout, err = flags.GetDuration("timeout"); err != nil {
			return err
		}
	}
	if flags.Changed("limit") {
		if cfg.DisplayLimit, err = flags.GetInt("limit"); err != nil {
			return err
		}
	}
	if flags.Changed("user-agent") {
		if cfg.UserAgent, err = flags.GetString("user-agent"); err != nil {
			return err
		}
	}
	if flags.Changed("text-only") {
		if cfg.TextOnly, err = flags.GetBool("text-only"); err != nil {
			return err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	return nil
}

func validateConfig(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return alerr.Wrap(alerr.ErrConfigInvalid, err, "invalid configuration")
	}

	first := verrs[0]
	e := alerr.Newf(alerr.ErrConfigInvalid, "invalid %s", first.Field()).
		With("field", first.Field()).
		WithValue(fmt.Sprint(first.Value()))
	switch first.Tag() {
	case "gt":
		e.WithHelp(first.Field() + " must be greater than " + first.Param())
	case "gte":
		e.WithHelp(first.Field() + " must be at least " + first.Param())
	}
	return e
}

// expandEnvVars expands ${VAR} patterns in a string.
func expandEnvVars(s string) string {
	return os.Expand(s, os.Getenv)
}
