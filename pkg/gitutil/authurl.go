package gitutil

import "net/url"

// ProtocolPreference is the order in which declared transports are chosen
// for an authenticated URL. Basic Authentication needs an HTTP transport.
var ProtocolPreference = []Protocol{ProtocolHTTPS, ProtocolHTTP}

// DefaultProtocol is used when the remote declares none of ProtocolPreference,
// e.g. for ssh and git remotes.
const DefaultProtocol = ProtocolHTTPS

// SelectProtocol picks the first preferred protocol present in protocols,
// falling back to DefaultProtocol.
func SelectProtocol(protocols []Protocol) Protocol {
	for _, preferred := range ProtocolPreference {
		for _, p := range protocols {
			if p == preferred {
				return preferred
			}
		}
	}
	return DefaultProtocol
}

// AuthenticatedURL embeds cred into repositoryURL as Basic Authentication
// userinfo, producing scheme://<credential>@host[:port]/path.git.
//
// Without a credential, or with an empty one, repositoryURL is returned
// unchanged. The .git suffix is always appended to the rendered remote, so
// a repository whose name itself ends in .git keeps a doubled suffix.
func AuthenticatedURL(repositoryURL string, cred *Credential) (string, error) {
	if cred == nil || cred.Value == "" {
		return repositoryURL, nil
	}

	remote, err := ParseRemote(repositoryURL)
	if err != nil {
		return "", err
	}

	protocol := SelectProtocol(remote.Protocols())

	u, err := url.Parse(remote.String(protocol) + ".git")
	if err != nil {
		return "", err
	}
	u.User = cred.Userinfo()

	return u.String(), nil
}

// AuthenticatedURLFromEnv resolves the credential from the process
// environment and builds the authenticated URL for repositoryURL.
func AuthenticatedURLFromEnv(repositoryURL string) (string, error) {
	cred, _ := ResolveCredentialFromEnv()
	return AuthenticatedURL(repositoryURL, cred)
}
