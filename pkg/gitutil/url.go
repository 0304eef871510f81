package gitutil

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// redactedSecret replaces credentials in URLs written to logs or output.
const redactedSecret = "xxxxx"

// ParseRemote parses a git remote into a structured Remote.
// Handles the formats git itself accepts for network remotes:
// - https://github.com/user/repo.git
// - git+https://github.com/user/repo.git
// - ssh://git@github.com:2222/user/repo.git
// - git@github.com:user/repo.git
// Local paths and file:// URLs are rejected since they cannot carry credentials.
func ParseRemote(raw string) (*Remote, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("remote URL cannot be empty")
	}

	endpoint, err := transport.NewEndpoint(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid remote URL %s: %w", RedactURL(raw), err)
	}

	if Protocol(endpoint.Protocol) == ProtocolFile {
		return nil, fmt.Errorf("invalid remote URL %s: local repositories are not supported", RedactURL(raw))
	}

	if endpoint.Host == "" {
		return nil, fmt.Errorf("invalid remote URL %s: missing host", RedactURL(raw))
	}

	remote := &Remote{
		Raw:       raw,
		Host:      endpoint.Host,
		Path:      strings.TrimPrefix(endpoint.Path, "/"),
		User:      endpoint.User,
		protocols: splitProtocols(endpoint.Protocol),
	}

	// scp-like remotes report the ssh default port even when none was written
	if !hasDefaultPort(remote.protocols, endpoint.Port) {
		remote.Port = endpoint.Port
	}

	return remote, nil
}

// splitProtocols expands compound schemes such as git+ssh into their parts.
func splitProtocols(scheme string) []Protocol {
	var protocols []Protocol
	for _, part := range strings.Split(strings.ToLower(scheme), "+") {
		if part == "" {
			continue
		}
		protocols = append(protocols, Protocol(part))
	}
	return protocols
}

func hasDefaultPort(protocols []Protocol, port int) bool {
	if port == 0 {
		return true
	}
	for _, p := range protocols {
		if defaultPorts[p] == port {
			return true
		}
	}
	return false
}

// Protocols returns the transports the remote declares, in the order they
// appear in its scheme.
func (r *Remote) Protocols() []Protocol {
	out := make([]Protocol, len(r.protocols))
	copy(out, r.protocols)
	return out
}

// Supports reports whether the remote declares the given protocol.
func (r *Remote) Supports(p Protocol) bool {
	for _, candidate := range r.protocols {
		if candidate == p {
			return true
		}
	}
	return false
}

// FullName returns owner/name, without a trailing .git.
func (r *Remote) FullName() string {
	return strings.TrimSuffix(strings.TrimSuffix(r.Path, "/"), ".git")
}

// Owner returns everything before the last path segment, e.g. the
// organization or the GitLab group/subgroup.
func (r *Remote) Owner() string {
	name := r.FullName()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i]
	}
	return ""
}

// Name returns the repository name.
func (r *Remote) Name() string {
	name := r.FullName()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// String renders the remote under the given protocol as
// protocol://host[:port]/owner/name. Userinfo is never included.
func (r *Remote) String(p Protocol) string {
	host := r.Host
	if r.Port != 0 {
		host += ":" + strconv.Itoa(r.Port)
	}

	u := url.URL{
		Scheme: string(p),
		Host:   host,
		Path:   "/" + r.FullName(),
	}
	return u.String()
}

// RedactURL masks the userinfo of a URL so it can be logged.
// Tokens used as usernames are masked as well as passwords.
// Strings that are not URLs, like scp-like remotes, are returned untouched.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), redactedSecret)
	} else {
		u.User = url.User(redactedSecret)
	}
	return u.String()
}
