package config

import "github.com/goliatone/gitauth/pkg/gitutil"

// Config represents the complete configuration for gitauth operations.
type Config struct {
	// RepositoryURL is the remote used when no URL is passed as an argument.
	RepositoryURL string `json:"repository_url,omitempty" yaml:"repository_url,omitempty"`

	// Output contains settings for what is written to stdout
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging level and output configuration
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Credential is the credential resolved from the environment, if any.
	// It is never read from or written to configuration files.
	Credential *gitutil.Credential `json:"-" yaml:"-"`

	setFlags boolFlags `json:"-" yaml:"-"`
}

type boolFlags struct {
	outputRedact   bool
	loggingVerbose bool
	loggingQuiet   bool
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Redact masks the credential in printed URLs.
	// Default: false
	Redact bool `json:"redact" yaml:"redact"`
}

// LoggingConfig manages logging level, output format, and
// structured logging configuration.
type LoggingConfig struct {
	// Level controls the logging verbosity level.
	// Valid values: debug, info, warn, error
	// Default: info
	Level string `json:"level" yaml:"level"`

	// Format controls the log output format.
	// Valid values: text, json
	// Default: text
	Format string `json:"format" yaml:"format"`

	// Verbose enables verbose logging output.
	// Equivalent to setting Level to "debug"
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet suppresses non-essential output.
	// Equivalent to setting Level to "warn"
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// Environment variable mapping constants for configuration parsing
const (
	EnvRepositoryURL = "GITAUTH_REPOSITORY_URL"
	EnvConfigFile    = "GITAUTH_CONFIG"
	EnvRedact        = "GITAUTH_REDACT"

	// Logging environment variables
	EnvLogLevel  = "GITAUTH_LOG_LEVEL"
	EnvLogFormat = "GITAUTH_LOG_FORMAT"
	EnvVerbose   = "GITAUTH_VERBOSE"
	EnvQuiet     = "GITAUTH_QUIET"
)

// Default values applied before any configuration source.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// New returns a Config populated with safe zero values.
func New() *Config {
	return &Config{}
}

// Defaults returns a Config populated with built-in defaults.
func Defaults() *Config {
	cfg := New()
	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	return cfg
}
