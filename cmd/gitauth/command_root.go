package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/gitauth/pkg/config"
	"github.com/goliatone/gitauth/pkg/gitutil"
)

// app holds state shared by subcommands once configuration is loaded.
type app struct {
	lookup gitutil.LookupFunc
	cfg    *config.Config
	logger *slog.Logger
}

// newRootCommand creates the root cobra command with all subcommands
func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitauth",
		Short: "gitauth builds authenticated git remote URLs from CI credentials",
		Long: `gitauth turns a repository URL into an HTTP(S) URL carrying Basic
Authentication credentials taken from the environment, so CI jobs can push
and fetch without interactive authentication.

Credential variables (first one set wins):
  GH_TOKEN, GITHUB_TOKEN      used as the username
  GL_TOKEN, GITLAB_TOKEN      sent as gitlab-ci-token:<token>
  GIT_CREDENTIALS             a token or username:password pair

When none is set the repository URL is printed unchanged.

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (GITAUTH_*)
  3. Configuration files (~/.config/gitauth/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0  - Success
  1  - Generic error
  2  - Configuration error
  3  - Validation error (missing or invalid arguments)
  4  - Repository URL error

Examples:
  GH_TOKEN=token gitauth url https://github.com/example/repo.git
  GL_TOKEN=token gitauth url git@gitlab.com:example/repo.git
  gitauth inspect git+ssh://git@example.com/example/repo.git`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	// Override Cobra's default error handling to use structured errors
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newValidationError("invalid flag usage", err)
	})

	config.AddFlags(cmd)

	cmd.AddCommand(
		newURLCommand(a),
		newCredentialCommand(a),
		newInspectCommand(a),
		newVersionCommand(),
	)

	return cmd
}

// initialize builds configuration from file, environment and flags and
// sets up the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	opts := []config.BuilderOption{}
	if a.lookup != nil {
		opts = append(opts, config.WithLookup(a.lookup))
	}

	cfg, err := config.NewBuilder(opts...).
		FromFile(config.ConfigFileFlag(cmd)).
		FromEnv().
		FromFlags(cmd).
		Build()
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}

	a.cfg = cfg
	a.logger = config.NewLogger(cfg, cmd.ErrOrStderr())

	source := "none"
	if cfg.Credential != nil {
		source = cfg.Credential.Source
	}
	a.logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"credential_source", source,
		"redact", cfg.Output.Redact,
	)

	return nil
}

// maxOneArg wraps cobra.MaximumNArgs so argument errors map to the
// validation exit code.
func maxOneArg(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return newValidationError("invalid arguments", err)
	}
	return nil
}
