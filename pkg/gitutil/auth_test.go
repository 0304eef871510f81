package gitutil

import (
	"net/url"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveCredential(t *testing.T) {
	tests := []struct {
		name       string
		envVars    map[string]string
		wantOK     bool
		wantSource string
		wantValue  string
	}{
		{
			name:    "no variables set",
			envVars: map[string]string{},
			wantOK:  false,
		},
		{
			name:       "GH_TOKEN is used verbatim",
			envVars:    map[string]string{EnvGHToken: "abc"},
			wantOK:     true,
			wantSource: EnvGHToken,
			wantValue:  "abc",
		},
		{
			name:       "GITHUB_TOKEN is used verbatim",
			envVars:    map[string]string{EnvGitHubToken: "ghs_123"},
			wantOK:     true,
			wantSource: EnvGitHubToken,
			wantValue:  "ghs_123",
		},
		{
			name:       "GL_TOKEN gets the gitlab-ci-token user",
			envVars:    map[string]string{EnvGLToken: "xyz"},
			wantOK:     true,
			wantSource: EnvGLToken,
			wantValue:  "gitlab-ci-token:xyz",
		},
		{
			name:       "GITLAB_TOKEN gets the gitlab-ci-token user",
			envVars:    map[string]string{EnvGitLabToken: "glpat-1"},
			wantOK:     true,
			wantSource: EnvGitLabToken,
			wantValue:  "gitlab-ci-token:glpat-1",
		},
		{
			name:       "GIT_CREDENTIALS pair is used verbatim",
			envVars:    map[string]string{EnvGitCredentials: "user:pass"},
			wantOK:     true,
			wantSource: EnvGitCredentials,
			wantValue:  "user:pass",
		},
		{
			name: "GH_TOKEN takes precedence over GITLAB_TOKEN",
			envVars: map[string]string{
				EnvGHToken:     "gh",
				EnvGitLabToken: "gl",
			},
			wantOK:     true,
			wantSource: EnvGHToken,
			wantValue:  "gh",
		},
		{
			name: "GITHUB_TOKEN takes precedence over GL_TOKEN",
			envVars: map[string]string{
				EnvGitHubToken: "gh",
				EnvGLToken:     "gl",
			},
			wantOK:     true,
			wantSource: EnvGitHubToken,
			wantValue:  "gh",
		},
		{
			name: "GITLAB_TOKEN takes precedence over GIT_CREDENTIALS",
			envVars: map[string]string{
				EnvGitLabToken:    "gl",
				EnvGitCredentials: "user:pass",
			},
			wantOK:     true,
			wantSource: EnvGitLabToken,
			wantValue:  "gitlab-ci-token:gl",
		},
		{
			name: "empty variable is defined and shadows later ones",
			envVars: map[string]string{
				EnvGHToken:        "",
				EnvGitCredentials: "user:pass",
			},
			wantOK:     true,
			wantSource: EnvGHToken,
			wantValue:  "",
		},
		{
			name:       "empty GitLab variable still gets the user",
			envVars:    map[string]string{EnvGLToken: ""},
			wantOK:     true,
			wantSource: EnvGLToken,
			wantValue:  "gitlab-ci-token:",
		},
		{
			name:       "value is not trimmed",
			envVars:    map[string]string{EnvGHToken: " abc "},
			wantOK:     true,
			wantSource: EnvGHToken,
			wantValue:  " abc ",
		},
		{
			name:    "unrelated variables are ignored",
			envVars: map[string]string{"GITHUB_ACCESS_TOKEN": "abc"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCredential(MapLookup(tt.envVars))
			if ok != tt.wantOK {
				t.Fatalf("ResolveCredential() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				if got != nil {
					t.Errorf("ResolveCredential() = %+v, want nil", got)
				}
				return
			}

			want := &Credential{Source: tt.wantSource, Value: tt.wantValue}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ResolveCredential() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveCredential_NilLookup(t *testing.T) {
	if got, ok := ResolveCredential(nil); ok || got != nil {
		t.Errorf("ResolveCredential(nil) = %+v, %v, want nil, false", got, ok)
	}
}

func TestResolveCredentialFromEnv(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvGitLabToken, "from-env")

	got, ok := ResolveCredentialFromEnv()
	if !ok {
		t.Fatal("ResolveCredentialFromEnv() ok = false, want true")
	}

	want := &Credential{Source: EnvGitLabToken, Value: "gitlab-ci-token:from-env"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveCredentialFromEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestCredentialEnvVars(t *testing.T) {
	want := []string{"GH_TOKEN", "GITHUB_TOKEN", "GL_TOKEN", "GITLAB_TOKEN", "GIT_CREDENTIALS"}
	if diff := cmp.Diff(want, CredentialEnvVars()); diff != "" {
		t.Errorf("CredentialEnvVars() mismatch (-want +got):\n%s", diff)
	}
}

func TestCredentialUserinfo(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *url.Userinfo
	}{
		{name: "token", value: "abc", want: url.User("abc")},
		{name: "pair", value: "user:pass", want: url.UserPassword("user", "pass")},
		{name: "password with colon", value: "user:pa:ss", want: url.UserPassword("user", "pa:ss")},
		{name: "empty password", value: "gitlab-ci-token:", want: url.UserPassword("gitlab-ci-token", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := &Credential{Source: EnvGitCredentials, Value: tt.value}
			got := cred.Userinfo()
			if got.String() != tt.want.String() {
				t.Errorf("Userinfo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCredentialRedacted(t *testing.T) {
	tests := []struct {
		name string
		cred *Credential
		want string
	}{
		{name: "nil", cred: nil, want: ""},
		{name: "empty", cred: &Credential{Source: EnvGHToken}, want: ""},
		{name: "token", cred: &Credential{Source: EnvGHToken, Value: "abc"}, want: "xxxxx"},
		{name: "pair", cred: &Credential{Source: EnvGLToken, Value: "gitlab-ci-token:xyz"}, want: "gitlab-ci-token:xxxxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cred.Redacted(); got != tt.want {
				t.Errorf("Redacted() = %v, want %v", got, tt.want)
			}
		})
	}
}

// clearCredentialEnv unsets every credential variable for the duration of the test.
func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range CredentialEnvVars() {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}
