// Package config loads the Canvas connection settings.
//
// Sources, highest to lowest priority:
//  1. Environment variables (CANVAS_API_URL, CANVAS_API_TOKEN)
//  2. Config file (~/.canvas-mcp/config.yaml or ./config.yaml)
//  3. A discovered .env file (current directory, then home directory)
//
// The server cannot be constructed without both values; Load fails fast
// with sentinel errors checkable via errors.Is(). The token is never
// logged; use MaskedToken for diagnostic output.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIURL indicates the Canvas API URL is not configured.
	ErrMissingAPIURL = errors.New("missing Canvas API URL")

	// ErrMissingAPIToken indicates the Canvas API token is not configured.
	ErrMissingAPIToken = errors.New("missing Canvas API token")

	// ErrInvalidAPIURL indicates the configured URL is not a valid
	// http(s) URL.
	ErrInvalidAPIURL = errors.New("invalid Canvas API URL")
)

// Config stores the Canvas connection settings.
type Config struct {
	// APIURL is the Canvas API root, e.g.
	// https://canvas.instructure.com/api/v1
	APIURL string `mapstructure:"api_url"`

	// APIToken is the static bearer token. SENSITIVE: never log it.
	APIToken string `mapstructure:"api_token"`
}

// Load loads configuration from the environment, an optional config
// file under ~/.canvas-mcp or the current directory, and an optional
// .env file. Validation runs before returning.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	cfg, err := load([]string{filepath.Join(home, ".canvas-mcp"), "."}, []string{".", home})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// load is the testable core of Load: configPaths are searched for
// config.yaml, dotenvPaths for a .env file.
func load(configPaths, dotenvPaths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars or .env may carry
		// the values.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := applyDotenv(&cfg, dotenvPaths); err != nil {
		return nil, err
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindEnvVariables binds the two environment variables explicitly.
func bindEnvVariables(v *viper.Viper) {
	// Hardcoded keys cannot fail to bind; a panic here is a bug.
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("api_url", "CANVAS_API_URL")
	mustBind("api_token", "CANVAS_API_TOKEN")
}

// applyDotenv fills any gaps from the first .env file found in the
// given directories.
func applyDotenv(cfg *Config, dirs []string) error {
	if cfg.APIURL != "" && cfg.APIToken != "" {
		return nil
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err != nil {
			continue
		}

		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if cfg.APIURL == "" {
			cfg.APIURL = v.GetString("CANVAS_API_URL")
		}
		if cfg.APIToken == "" {
			cfg.APIToken = v.GetString("CANVAS_API_TOKEN")
		}
		return nil
	}
	return nil
}

// Validate checks that both required values are present and the URL is
// well-formed. Returns sentinel errors checkable with errors.Is().
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("%w: set CANVAS_API_URL (e.g. https://your-instance.instructure.com/api/v1)",
			ErrMissingAPIURL)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidAPIURL, c.APIURL)
	}

	if c.APIToken == "" {
		return fmt.Errorf("%w: set CANVAS_API_TOKEN", ErrMissingAPIToken)
	}
	return nil
}

// maskedValue is the placeholder for masked sensitive data.
const maskedValue = "████████"

// MaskedToken renders the token for diagnostics without exposing it.
// Short tokens are fully masked; longer ones show the first and last
// two characters.
func (c *Config) MaskedToken() string {
	if c.APIToken == "" {
		return ""
	}
	if len(c.APIToken) <= 8 {
		return maskedValue
	}
	return c.APIToken[:2] + "<" + maskedValue + ">" + c.APIToken[len(c.APIToken)-2:]
}
