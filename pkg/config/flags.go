package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names shared between AddFlags and the extraction logic.
const (
	FlagConfigFile    = "config"
	FlagRepositoryURL = "repository-url"
	FlagRedact        = "redact"
	FlagVerbose       = "verbose"
	FlagQuiet         = "quiet"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// FlagConfig represents flag parsing configuration and results
type FlagConfig struct {
	ConfigFile    string
	RepositoryURL string
	Redact        bool
	Verbose       bool
	Quiet         bool
	LogLevel      string
	LogFormat     string

	redactSet    bool
	verboseSet   bool
	quietSet     bool
	logLevelSet  bool
	logFormatSet bool
}

// AddFlags adds all configuration flags to the provided cobra command as
// persistent flags, so every subcommand inherits them.
func AddFlags(cmd *cobra.Command) *FlagConfig {
	fc := &FlagConfig{}

	cmd.PersistentFlags().StringVarP(&fc.ConfigFile, FlagConfigFile, "c", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/gitauth/config.yaml)")
	cmd.PersistentFlags().StringVar(&fc.RepositoryURL, FlagRepositoryURL, "",
		"Repository URL used when none is given as an argument")
	cmd.PersistentFlags().BoolVar(&fc.Redact, FlagRedact, false,
		"Mask credentials in printed URLs")

	// Logging control flags
	cmd.PersistentFlags().BoolVarP(&fc.Verbose, FlagVerbose, "v", false,
		"Verbose logging output (equivalent to --log-level=debug)")
	cmd.PersistentFlags().BoolVarP(&fc.Quiet, FlagQuiet, "q", false,
		"Suppress non-essential output (equivalent to --log-level=warn)")
	cmd.PersistentFlags().StringVar(&fc.LogLevel, FlagLogLevel, "",
		"Logging level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&fc.LogFormat, FlagLogFormat, "",
		"Log output format (text, json)")

	cmd.MarkFlagsMutuallyExclusive(FlagVerbose, FlagQuiet)
	cmd.MarkFlagsMutuallyExclusive(FlagVerbose, FlagLogLevel)
	cmd.MarkFlagsMutuallyExclusive(FlagQuiet, FlagLogLevel)

	return fc
}

// ValidateFlags validates flag combinations and values.
// Returns an error if any validation rules are violated.
func (fc *FlagConfig) ValidateFlags() error {
	var errors []string

	if fc.logLevelSet && !slices.Contains(validLogLevels, fc.LogLevel) {
		errors = append(errors, fmt.Sprintf("log-level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	if fc.logFormatSet && !slices.Contains(validLogFormats, fc.LogFormat) {
		errors = append(errors, fmt.Sprintf("log-format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if fc.verboseSet && fc.quietSet && fc.Verbose && fc.Quiet {
		errors = append(errors, "verbose and quiet cannot both be enabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("flag validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ToConfig converts flag configuration to a Config struct.
// It emits only the values explicitly set via flags; callers should merge
// this result with other configuration sources to honour precedence rules.
func (fc *FlagConfig) ToConfig() *Config {
	config := New()

	config.RepositoryURL = strings.TrimSpace(fc.RepositoryURL)

	if fc.redactSet {
		config.setOutputRedact(fc.Redact)
	}
	if fc.verboseSet {
		config.setLoggingVerbose(fc.Verbose)
	}
	if fc.quietSet {
		config.setLoggingQuiet(fc.Quiet)
	}
	if fc.logLevelSet {
		config.Logging.Level = fc.LogLevel
	}
	if fc.logFormatSet {
		config.Logging.Format = fc.LogFormat
	}

	return config
}

// LoadFromFlags loads configuration from command-line flags using cobra.
func LoadFromFlags(cmd *cobra.Command) (*Config, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command cannot be nil")
	}

	// cmd.Flags() returns both local and inherited flags
	fc := extractFlagConfig(cmd.Flags())

	if err := fc.ValidateFlags(); err != nil {
		return nil, err
	}

	return fc.ToConfig(), nil
}

// ConfigFileFlag returns the --config value if it was set on cmd.
func ConfigFileFlag(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}
	flags := cmd.Flags()
	if !flags.Changed(FlagConfigFile) {
		return ""
	}
	path, _ := flags.GetString(FlagConfigFile)
	return strings.TrimSpace(path)
}

// extractFlagConfig extracts flag values from a flag set into FlagConfig
func extractFlagConfig(flags *pflag.FlagSet) *FlagConfig {
	fc := &FlagConfig{}

	if flags.Changed(FlagConfigFile) {
		fc.ConfigFile, _ = flags.GetString(FlagConfigFile)
	}
	if flags.Changed(FlagRepositoryURL) {
		fc.RepositoryURL, _ = flags.GetString(FlagRepositoryURL)
	}
	if flags.Changed(FlagRedact) {
		fc.Redact, _ = flags.GetBool(FlagRedact)
		fc.redactSet = true
	}
	if flags.Changed(FlagVerbose) {
		fc.Verbose, _ = flags.GetBool(FlagVerbose)
		fc.verboseSet = true
	}
	if flags.Changed(FlagQuiet) {
		fc.Quiet, _ = flags.GetBool(FlagQuiet)
		fc.quietSet = true
	}
	if flags.Changed(FlagLogLevel) {
		fc.LogLevel, _ = flags.GetString(FlagLogLevel)
		fc.logLevelSet = true
	}
	if flags.Changed(FlagLogFormat) {
		fc.LogFormat, _ = flags.GetString(FlagLogFormat)
		fc.logFormatSet = true
	}

	return fc
}
