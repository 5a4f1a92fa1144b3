package config

import (
	"log/slog"

	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra/gitrepo"
	"github.com/urfave/cli/v3"
)

const (
	defaultBotName  = "gitea-actions[bot]"
	defaultBotEmail = "gitea-actions[bot]@noreply.gitea.io"
)

// Git carries the commit identity and optional SSH signing key material.
// The bot identity defaults match what Gitea Actions uses for its own
// commits.
type Git struct {
	authorName     string
	authorEmail    string
	committerName  string
	committerEmail string

	signingPrivateKey types.SigningPrivateKey `masq:"secret"`
	signingPublicKey  string
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-author-name",
			Usage:       "Git author name",
			Category:    "Git",
			Value:       defaultBotName,
			Destination: &x.authorName,
			Sources:     cli.EnvVars("GIT_AUTHOR_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-author-email",
			Usage:       "Git author email",
			Category:    "Git",
			Value:       defaultBotEmail,
			Destination: &x.authorEmail,
			Sources:     cli.EnvVars("GIT_AUTHOR_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "git-committer-name",
			Usage:       "Git committer name",
			Category:    "Git",
			Value:       defaultBotName,
			Destination: &x.committerName,
			Sources:     cli.EnvVars("GIT_COMMITTER_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-committer-email",
			Usage:       "Git committer email",
			Category:    "Git",
			Value:       defaultBotEmail,
			Destination: &x.committerEmail,
			Sources:     cli.EnvVars("GIT_COMMITTER_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "signing-private-key",
			Usage:       "SSH private key for commit signing",
			Category:    "Git",
			Destination: (*string)(&x.signingPrivateKey),
			Sources:     cli.EnvVars("GIT_SIGNING_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "signing-public-key",
			Usage:       "SSH public key for commit signing",
			Category:    "Git",
			Destination: &x.signingPublicKey,
			Sources:     cli.EnvVars("GIT_SIGNING_PUBLIC_KEY"),
		},
	}
}

func (x *Git) AuthorName() string     { return x.authorName }
func (x *Git) AuthorEmail() string    { return x.authorEmail }
func (x *Git) CommitterName() string  { return x.committerName }
func (x *Git) CommitterEmail() string { return x.committerEmail }

// NewSigning materializes the signing key pair. Without key material the
// returned configurator is inert and never mutates repository config.
func (x *Git) NewSigning() (*gitrepo.Signing, error) {
	return gitrepo.NewSigning(x.signingPrivateKey, x.signingPublicKey)
}

func (x Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("AuthorName", x.authorName),
		slog.String("AuthorEmail", x.authorEmail),
		slog.String("CommitterName", x.committerName),
		slog.String("CommitterEmail", x.committerEmail),
		slog.Bool("SigningConfigured", x.signingPrivateKey != "" && x.signingPublicKey != ""),
	)
}
