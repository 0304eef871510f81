package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/gitauth/pkg/gitutil"
)

// Builder orchestrates config assembly from various sources.
// Sources are merged in precedence order regardless of call order:
// defaults < file < environment < flags.
type Builder struct {
	lookup gitutil.LookupFunc

	useFile  bool
	filePath string
	useEnv   bool
	cmd      *cobra.Command
}

// BuilderOption customises a Builder.
type BuilderOption func(*Builder)

// WithLookup replaces the process environment as the source for
// environment variables, including credential variables.
func WithLookup(lookup gitutil.LookupFunc) BuilderOption {
	return func(b *Builder) {
		b.lookup = lookup
	}
}

// NewBuilder returns a builder reading from the process environment unless
// WithLookup is given.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromFile loads path as a configuration file. An empty path falls back to
// GITAUTH_CONFIG and then to DefaultConfigPath, which may be absent.
func (b *Builder) FromFile(path string) *Builder {
	b.useFile = true
	b.filePath = strings.TrimSpace(path)
	return b
}

// FromEnv loads GITAUTH_* variables and resolves the credential.
func (b *Builder) FromEnv() *Builder {
	b.useEnv = true
	return b
}

// FromFlags loads explicitly set flags of cmd.
func (b *Builder) FromFlags(cmd *cobra.Command) *Builder {
	b.cmd = cmd
	return b
}

// Build merges the configured sources, applies verbose/quiet shortcuts and
// validates the result.
func (b *Builder) Build() (*Config, error) {
	cfg := Defaults()

	envParser := NewEnvParserWithLookup(b.lookup)

	if b.useFile {
		fileCfg, err := b.loadFile(envParser)
		if err != nil {
			return nil, err
		}
		merge(cfg, fileCfg)
	}

	if b.useEnv {
		envCfg, err := envParser.ParseEnv()
		if err != nil {
			return nil, err
		}
		merge(cfg, envCfg)
		cfg.Credential = envCfg.Credential
	}

	if b.cmd != nil {
		flagCfg, err := LoadFromFlags(b.cmd)
		if err != nil {
			return nil, err
		}
		merge(cfg, flagCfg)
	}

	applyLoggingShortcuts(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile resolves which configuration file to read. Explicit paths must
// exist; the default location is optional.
func (b *Builder) loadFile(envParser *EnvParser) (*Config, error) {
	path := b.filePath
	if path == "" {
		path = envParser.ConfigFile()
	}

	if path == "" {
		defaultPath := DefaultConfigPath(b.lookup)
		if !fileExists(defaultPath) {
			return nil, nil
		}
		path = defaultPath
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// merge copies values set in src over dst. Booleans from files are merged
// when true; env and flag booleans carry explicit-set markers.
func merge(dst, src *Config) {
	if src == nil {
		return
	}

	if src.RepositoryURL != "" {
		dst.RepositoryURL = src.RepositoryURL
	}

	if src.outputRedactSet() || src.Output.Redact {
		dst.setOutputRedact(src.Output.Redact)
	}

	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.loggingVerboseSet() || src.Logging.Verbose {
		dst.setLoggingVerbose(src.Logging.Verbose)
	}
	if src.loggingQuietSet() || src.Logging.Quiet {
		dst.setLoggingQuiet(src.Logging.Quiet)
	}
}

// applyLoggingShortcuts maps verbose and quiet onto the log level.
func applyLoggingShortcuts(cfg *Config) {
	switch {
	case cfg.Logging.Verbose && cfg.Logging.Quiet:
		// left for Validate to report
	case cfg.Logging.Verbose:
		cfg.Logging.Level = "debug"
	case cfg.Logging.Quiet:
		cfg.Logging.Level = "warn"
	}
}
