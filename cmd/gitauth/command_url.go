package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/gitauth/pkg/gitutil"
)

func newURLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "url [REPOSITORY_URL]",
		Short: "Print the repository URL with credentials embedded",
		Long: `Print the repository URL with the resolved credential embedded as Basic
Authentication. The transport is https unless the URL only offers http.
Without a credential variable the URL is printed unchanged.

The repository URL defaults to --repository-url, GITAUTH_REPOSITORY_URL or
repository_url in the configuration file.`,
		Example: `  GH_TOKEN=token gitauth url https://github.com/example/repo.git
  GIT_CREDENTIALS=user:pass gitauth url --redact git@gitlab.com:example/repo.git`,
		Args: maxOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runURL(cmd, args)
		},
	}
}

func (a *app) runURL(cmd *cobra.Command, args []string) error {
	repositoryURL, err := a.repositoryURL(args)
	if err != nil {
		return err
	}

	cred := a.cfg.Credential
	if cred == nil {
		a.logger.Debug("no credential variable set, keeping repository URL",
			"checked", strings.Join(gitutil.CredentialEnvVars(), ","),
		)
	}

	authURL, err := gitutil.AuthenticatedURL(repositoryURL, cred)
	if err != nil {
		return newURLError("failed to build authenticated URL", err)
	}

	if cred != nil {
		a.logger.Debug("authenticated URL built",
			"credential_source", cred.Source,
			"url", gitutil.RedactURL(authURL),
		)
	}

	if a.cfg.Output.Redact {
		authURL = gitutil.RedactURL(authURL)
	}

	fmt.Fprintln(cmd.OutOrStdout(), authURL)
	return nil
}

// repositoryURL returns the positional argument or the configured default.
func (a *app) repositoryURL(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if strings.TrimSpace(a.cfg.RepositoryURL) != "" {
		return a.cfg.RepositoryURL, nil
	}
	return "", newValidationError("repository URL is required", nil)
}
