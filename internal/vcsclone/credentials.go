package vcsclone

import (
	"os"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/rs/zerolog/log"
)

// SSHPrivateKeyEnv is the environment variable holding the PEM-encoded SSH
// private key used to authenticate git clones, when the remote requires it.
const SSHPrivateKeyEnv = "SSH_PRIVATE_KEY"

var (
	explicitKeyMu sync.Mutex
	explicitKey   string

	// sshPrivateKey is the process-wide clone credential, computed exactly
	// once on first use: the environment always wins over an explicit key
	// supplied via SetSSHPrivateKey before that first use.
	sshPrivateKey = sync.OnceValue(func() string {
		if env := os.Getenv(SSHPrivateKeyEnv); env != "" {
			return env
		}
		explicitKeyMu.Lock()
		key := explicitKey
		explicitKeyMu.Unlock()
		if key == "" {
			log.Warn().Msg("vcsclone: no SSH key provided, set SSH_PRIVATE_KEY to clone private repositories")
		}
		return key
	})
)

// SetSSHPrivateKey registers an explicit private key to fall back on if
// SSH_PRIVATE_KEY is unset in the environment. It has no effect once the
// credential has already been resolved by a prior Clone.
func SetSSHPrivateKey(pem string) {
	explicitKeyMu.Lock()
	explicitKey = pem
	explicitKeyMu.Unlock()
}

// auth builds transport auth for url, returning nil when no key is
// configured (anonymous/HTTPS clones proceed without it).
func auth() transport.AuthMethod {
	pem := sshPrivateKey()
	if pem == "" {
		return nil
	}
	method, err := gitssh.NewPublicKeys("git", []byte(pem), "")
	if err != nil {
		log.Error().Err(err).Msg("vcsclone: parse SSH private key")
		return nil
	}
	return method
}
