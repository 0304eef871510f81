package gitutil

import (
	"net/url"
	"os"
	"strings"
)

// Environment variable names recognized as credential sources.
const (
	// EnvGHToken is the GitHub CLI token environment variable
	EnvGHToken = "GH_TOKEN"

	// EnvGitHubToken is the GitHub Actions token environment variable
	EnvGitHubToken = "GITHUB_TOKEN"

	// EnvGLToken is the short GitLab token environment variable
	EnvGLToken = "GL_TOKEN"

	// EnvGitLabToken is the GitLab token environment variable
	EnvGitLabToken = "GITLAB_TOKEN"

	// EnvGitCredentials holds a raw username:password pair or token
	EnvGitCredentials = "GIT_CREDENTIALS"
)

// GitLabCIUser is the username GitLab expects alongside a CI or personal token.
const GitLabCIUser = "gitlab-ci-token"

// LookupFunc retrieves an environment variable, reporting whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a fixed map.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

// CredentialFormat turns the raw value of a credential variable into the
// userinfo embedded in the URL.
type CredentialFormat func(value string) string

// Verbatim uses the variable value as-is: a token or username:password.
func Verbatim(value string) string {
	return value
}

// GitLabCIToken pairs the value with the gitlab-ci-token username.
func GitLabCIToken(value string) string {
	return GitLabCIUser + ":" + value
}

// CredentialSource binds a recognized variable to its formatting strategy.
type CredentialSource struct {
	EnvVar string
	Format CredentialFormat
}

// CredentialSources lists the recognized credential variables in order of
// precedence. The first one that is set wins.
var CredentialSources = []CredentialSource{
	{EnvVar: EnvGHToken, Format: Verbatim},
	{EnvVar: EnvGitHubToken, Format: Verbatim},
	{EnvVar: EnvGLToken, Format: GitLabCIToken},
	{EnvVar: EnvGitLabToken, Format: GitLabCIToken},
	{EnvVar: EnvGitCredentials, Format: Verbatim},
}

// CredentialEnvVars returns the recognized variable names in precedence order.
func CredentialEnvVars() []string {
	names := make([]string, 0, len(CredentialSources))
	for _, source := range CredentialSources {
		names = append(names, source.EnvVar)
	}
	return names
}

// ResolveCredential selects the first credential source defined by lookup.
// A variable set to the empty string is defined and shadows the sources
// after it. Returns false when none of the variables is set.
func ResolveCredential(lookup LookupFunc) (*Credential, bool) {
	if lookup == nil {
		return nil, false
	}

	for _, source := range CredentialSources {
		value, ok := lookup(source.EnvVar)
		if !ok {
			continue
		}
		return &Credential{
			Source: source.EnvVar,
			Value:  source.Format(value),
		}, true
	}

	return nil, false
}

// ResolveCredentialFromEnv resolves a credential from the process environment.
func ResolveCredentialFromEnv() (*Credential, bool) {
	return ResolveCredential(os.LookupEnv)
}

// Userinfo splits the credential on its first colon into username and
// password. A credential without a colon is used as the username alone.
func (c *Credential) Userinfo() *url.Userinfo {
	if c == nil {
		return nil
	}
	if user, password, ok := strings.Cut(c.Value, ":"); ok {
		return url.UserPassword(user, password)
	}
	return url.User(c.Value)
}

// Redacted returns the credential with its secret part masked.
func (c *Credential) Redacted() string {
	if c == nil || c.Value == "" {
		return ""
	}
	if user, _, ok := strings.Cut(c.Value, ":"); ok {
		return user + ":" + redactedSecret
	}
	return redactedSecret
}
