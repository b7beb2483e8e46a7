package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"

	"github.com/hashicorp-forge/outline-mcp/pkg/outline"
)

const (
	EnvAPIToken = "OUTLINE_API_TOKEN"
	EnvBaseURL  = "OUTLINE_BASE_URL"
	EnvLogLevel = "OUTLINE_LOG_LEVEL"

	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"

	DefaultLogLevel = "info"
)

var httpScheme = regexp.MustCompile(`^https?://`)

// Config is the resolved server configuration.
type Config struct {
	APIToken string `hcl:"api_token,optional"`
	BaseURL  string `hcl:"base_url,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// ResolveOptions selects the optional files configuration is read from.
type ResolveOptions struct {
	// ConfigFile is an HCL file. Optional.
	ConfigFile string

	// EnvFile is a dotenv file. When empty, DefaultEnvFile is used if it
	// exists.
	EnvFile string
}

// Resolve builds the configuration from, lowest precedence first: defaults,
// the HCL file, the dotenv file and the process environment. Every problem
// found is reported in a single *outline.ConfigurationError. The process
// environment is never modified.
func Resolve(opts ResolveOptions) (*Config, error) {
	cfg := &Config{
		BaseURL:  outline.DefaultBaseURL,
		LogLevel: DefaultLogLevel,
	}

	var result *multierror.Error

	if opts.ConfigFile != "" {
		var fileCfg Config
		if err := hclsimple.DecodeFile(opts.ConfigFile, nil, &fileCfg); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("error decoding config file %q: %w", opts.ConfigFile, err))
		} else {
			cfg.merge(fileCfg)
		}
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		result = multierror.Append(result, err)
	}
	cfg.merge(Config{
		APIToken: dotenv[EnvAPIToken],
		BaseURL:  dotenv[EnvBaseURL],
		LogLevel: dotenv[EnvLogLevel],
	})

	cfg.merge(Config{
		APIToken: os.Getenv(EnvAPIToken),
		BaseURL:  os.Getenv(EnvBaseURL),
		LogLevel: os.Getenv(EnvLogLevel),
	})

	cfg.APIToken = strings.TrimSpace(cfg.APIToken)
	cfg.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		if len(result.Errors) == 1 {
			return nil, &outline.ConfigurationError{Err: result.Errors[0]}
		}
		return nil, &outline.ConfigurationError{Msg: "invalid configuration", Err: err}
	}

	return cfg, nil
}

// Validate checks each setting and returns every failure.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validation.Validate(c.APIToken,
		validation.Required.Error(EnvAPIToken+" environment variable is required"),
	); err != nil {
		result = multierror.Append(result, err)
	}

	if err := validation.Validate(c.BaseURL,
		validation.Required,
		is.URL,
		validation.Match(httpScheme).Error("must use http or https"),
	); err != nil {
		result = multierror.Append(result, fmt.Errorf("%s: %w", EnvBaseURL, err))
	}

	if err := validation.Validate(c.LogLevel,
		validation.In("trace", "debug", "info", "warn", "error"),
	); err != nil {
		result = multierror.Append(result, fmt.Errorf("%s: %w", EnvLogLevel, err))
	}

	if result == nil {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result
}

// Level returns the hclog level for LogLevel.
func (c *Config) Level() hclog.Level {
	if level := hclog.LevelFromString(c.LogLevel); level != hclog.NoLevel {
		return level
	}
	return hclog.Info
}

// ClientConfig returns the Outline client configuration.
func (c *Config) ClientConfig(logger hclog.Logger) outline.Config {
	cfg := *outline.DefaultConfig()
	cfg.APIToken = c.APIToken
	cfg.BaseURL = c.BaseURL
	cfg.Logger = logger
	return cfg
}

// merge overwrites settings with the non-empty values of other.
func (c *Config) merge(other Config) {
	if other.APIToken != "" {
		c.APIToken = other.APIToken
	}
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		path = DefaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}
	return values, nil
}
