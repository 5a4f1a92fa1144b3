package gitrepo

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/safe"
	"golang.org/x/crypto/ssh"
)

const signingKeyDirPrefix = "git-ssh-"

// Signing provisions an SSH commit-signing identity scoped to individual
// repository checkouts. Key material lives in a process-exclusive temporary
// directory for the lifetime of the configurator and nowhere else; Close
// removes it. Without key material the configurator is inert: Apply never
// touches existing repository configuration, so signing configured some
// other way stays in effect.
type Signing struct {
	keyDir     string
	pubKeyPath string
	signer     git.Signer
}

// NewSigning writes the key pair into a fresh temporary directory (private
// key owner-read/write only, public key world-readable) and prepares an SSH
// signer from the private key. If either key is empty it returns an inert
// configurator and writes nothing.
func NewSigning(privateKey types.SigningPrivateKey, publicKey string) (*Signing, error) {
	if privateKey == "" || publicKey == "" {
		return &Signing{}, nil
	}

	dir, err := os.MkdirTemp("", signingKeyDirPrefix)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create signing key directory")
	}

	keyPath := filepath.Join(dir, "signing_key")
	pubKeyPath := filepath.Join(dir, "signing_key.pub")

	if err := os.WriteFile(keyPath, []byte(string(privateKey)+"\n"), 0o600); err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to write private signing key")
	}
	if err := os.WriteFile(pubKeyPath, []byte(publicKey+"\n"), 0o644); err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to write public signing key")
	}

	sshSigner, err := ssh.ParsePrivateKey([]byte(privateKey))
	if err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to parse private signing key")
	}

	return &Signing{
		keyDir:     dir,
		pubKeyPath: pubKeyPath,
		signer:     newSSHSigner(sshSigner),
	}, nil
}

// Enabled reports whether key material was provided.
func (x *Signing) Enabled() bool {
	return x != nil && x.keyDir != ""
}

// PublicKeyPath is the path of the materialized public key. Empty when the
// configurator is inert.
func (x *Signing) PublicKeyPath() string {
	if !x.Enabled() {
		return ""
	}
	return x.pubKeyPath
}

// Signer returns the commit signer, or nil when signing is not configured.
func (x *Signing) Signer() git.Signer {
	if !x.Enabled() {
		return nil
	}
	return x.signer
}

// Apply sets user.signingkey, gpg.format and commit.gpgsign in the local
// configuration of the given repository only, never globally. Inert
// configurators leave the configuration untouched.
func (x *Signing) Apply(repo *git.Repository) error {
	if !x.Enabled() {
		return nil
	}

	cfg, err := repo.Config()
	if err != nil {
		return goerr.Wrap(err, "failed to read repository config")
	}

	cfg.Raw.Section("user").SetOption("signingkey", x.pubKeyPath)
	cfg.Raw.Section("gpg").SetOption("format", "ssh")
	cfg.Raw.Section("commit").SetOption("gpgsign", "true")

	if err := repo.SetConfig(cfg); err != nil {
		return goerr.Wrap(err, "failed to write repository config")
	}

	return nil
}

// Close removes the key directory and with it all key material. Safe to
// call on an inert configurator.
func (x *Signing) Close() {
	if x.Enabled() {
		safe.RemoveAll(x.keyDir)
	}
}
