package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/cli/config"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func parseGiteaFlags(t *testing.T, cfg *config.Gitea, repository string) {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{
		"test",
		"--gitea-url", "https://gitea.example.com",
		"--gitea-token", "secret-token",
		"--gitea-repository", repository,
	}))
}

func TestGiteaFlags(t *testing.T) {
	giteaConfig := &config.Gitea{}
	flags := giteaConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["gitea-url"])
	gt.True(t, flagNames["gitea-token"])
	gt.True(t, flagNames["gitea-repository"])
}

func TestGiteaOwnerRepo(t *testing.T) {
	t.Run("owner/repo splits", func(t *testing.T) {
		cfg := &config.Gitea{}
		parseGiteaFlags(t, cfg, "myorg/myrepo")

		owner, repo, err := cfg.OwnerRepo()
		gt.NoError(t, err)
		gt.V(t, owner).Equal("myorg")
		gt.V(t, repo).Equal("myrepo")
		gt.V(t, cfg.Token()).Equal(types.GiteaToken("secret-token"))
	})

	t.Run("missing separator fails validation", func(t *testing.T) {
		cfg := &config.Gitea{}
		parseGiteaFlags(t, cfg, "myrepo")

		_, _, err := cfg.OwnerRepo()
		gt.Error(t, err)
	})

	t.Run("empty owner fails validation", func(t *testing.T) {
		cfg := &config.Gitea{}
		parseGiteaFlags(t, cfg, "/myrepo")

		_, _, err := cfg.OwnerRepo()
		gt.Error(t, err)
	})
}
