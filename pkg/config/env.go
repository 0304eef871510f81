package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/gitauth/pkg/gitutil"
)

// EnvParser provides functionality to parse configuration from environment variables.
// It reads the GITAUTH_* namespace plus the recognized credential variables,
// which makes it the only place the process environment is consulted.
type EnvParser struct {
	// lookup allows injection of environment variable retrieval for testing
	lookup gitutil.LookupFunc
}

// NewEnvParser creates a new environment variable parser.
func NewEnvParser() *EnvParser {
	return &EnvParser{
		lookup: os.LookupEnv,
	}
}

// NewEnvParserWithLookup creates a new environment variable parser with custom lookup.
// This is primarily used for testing with mock environment variables.
func NewEnvParserWithLookup(lookup gitutil.LookupFunc) *EnvParser {
	if lookup == nil {
		lookup = gitutil.MapLookup(nil)
	}
	return &EnvParser{
		lookup: lookup,
	}
}

// ParseEnv parses all GITAUTH environment variables and the credential
// variables and returns a populated Config.
// It returns an error if any environment variables contain invalid values.
func (p *EnvParser) ParseEnv() (*Config, error) {
	var errs []string
	config := New()

	config.RepositoryURL = p.get(EnvRepositoryURL)

	if err := p.parseOutput(config); err != nil {
		errs = append(errs, err.Error())
	}

	if err := p.parseLogging(config); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("environment variable parsing errors: %s", strings.Join(errs, "; "))
	}

	config.Credential, _ = gitutil.ResolveCredential(p.lookup)

	return config, nil
}

// ConfigFile returns the configuration file named by GITAUTH_CONFIG.
func (p *EnvParser) ConfigFile() string {
	return p.get(EnvConfigFile)
}

// get returns the trimmed value of key, empty when unset.
func (p *EnvParser) get(key string) string {
	value, _ := p.lookup(key)
	return strings.TrimSpace(value)
}

func (p *EnvParser) parseOutput(config *Config) error {
	if redactStr := p.get(EnvRedact); redactStr != "" {
		redact, err := parseBool(redactStr)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvRedact, err)
		}
		config.setOutputRedact(redact)
	}
	return nil
}

// parseLogging parses logging-related environment variables
func (p *EnvParser) parseLogging(config *Config) error {
	var errs []string

	if level := p.get(EnvLogLevel); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}

	if format := p.get(EnvLogFormat); format != "" {
		config.Logging.Format = strings.ToLower(format)
	}

	if verboseStr := p.get(EnvVerbose); verboseStr != "" {
		verbose, err := parseBool(verboseStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvVerbose, err))
		} else {
			config.setLoggingVerbose(verbose)
		}
	}

	if quietStr := p.get(EnvQuiet); quietStr != "" {
		quiet, err := parseBool(quietStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvQuiet, err))
		} else {
			config.setLoggingQuiet(quiet)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// parseBool parses boolean values from environment variables.
// Accepts: true/false, 1/0, yes/no, on/off (case insensitive)
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("must be a boolean value (true/false, 1/0, yes/no, on/off), got %q", value)
	}
}
