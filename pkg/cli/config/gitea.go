package config

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra/gitea"
	"github.com/urfave/cli/v3"
)

type Gitea struct {
	url        string
	token      types.GiteaToken `masq:"secret"`
	repository string
}

func (x *Gitea) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitea-url",
			Usage:       "Gitea server URL",
			Category:    "Gitea",
			Destination: &x.url,
			Sources:     cli.EnvVars("GITEA_URL"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "gitea-token",
			Usage:       "Gitea authentication token",
			Category:    "Gitea",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITEA_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "gitea-repository",
			Usage:       "Repository in format owner/repo",
			Category:    "Gitea",
			Destination: &x.repository,
			Sources:     cli.EnvVars("GITEA_REPOSITORY"),
			Required:    true,
		},
	}
}

// OwnerRepo splits the configured repository into owner and name.
func (x *Gitea) OwnerRepo() (string, string, error) {
	owner, repo, ok := strings.Cut(x.repository, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", goerr.Wrap(types.ErrValidation,
			"repository must be in format owner/repo",
			goerr.V("repository", x.repository),
		)
	}
	return owner, repo, nil
}

func (x *Gitea) Token() types.GiteaToken {
	return x.token
}

// NewPublisher builds the API client, validating the token.
func (x *Gitea) NewPublisher(ctx context.Context) (*gitea.Client, error) {
	owner, repo, err := x.OwnerRepo()
	if err != nil {
		return nil, err
	}
	return gitea.New(ctx, x.url, x.token, owner, repo)
}

func (x Gitea) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.Int("Token.len", len(x.token)),
		slog.String("Repository", x.repository),
	)
}
