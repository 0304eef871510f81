package gitutil

// Protocol represents a git transport scheme.
type Protocol string

const (
	// ProtocolHTTPS represents HTTPS git protocol
	ProtocolHTTPS Protocol = "https"
	// ProtocolHTTP represents plain HTTP git protocol
	ProtocolHTTP Protocol = "http"
	// ProtocolSSH represents SSH git protocol
	ProtocolSSH Protocol = "ssh"
	// ProtocolGit represents git protocol
	ProtocolGit Protocol = "git"
	// ProtocolFile represents a local repository path
	ProtocolFile Protocol = "file"
)

// defaultPorts maps a transport to the port it uses when none is given.
var defaultPorts = map[Protocol]int{
	ProtocolHTTPS: 443,
	ProtocolHTTP:  80,
	ProtocolSSH:   22,
	ProtocolGit:   9418,
}

// Remote represents a parsed git remote that can be re-rendered under
// any of the transports it declares, or a different one.
type Remote struct {
	// Raw is the remote string as it was given
	Raw string

	// Host is the git hosting provider (e.g., github.com, gitlab.com)
	Host string

	// Port is the explicit port of the remote, zero when absent or implied
	Port int

	// Path is the repository path without leading slash, e.g. owner/name.git
	Path string

	// User is the userinfo username embedded in the remote, if any
	User string

	protocols []Protocol
}

// Credential is a resolved Basic Authentication credential together with
// the environment variable it came from.
type Credential struct {
	// Source is the name of the variable that supplied the credential
	Source string

	// Value is the formatted credential: a token or username:password
	Value string
}
