package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestGitFlags(t *testing.T) {
	gitConfig := &config.Git{}
	flags := gitConfig.Flags()

	gt.V(t, len(flags)).Equal(6)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["git-author-name"])
	gt.True(t, flagNames["git-author-email"])
	gt.True(t, flagNames["git-committer-name"])
	gt.True(t, flagNames["git-committer-email"])
	gt.True(t, flagNames["signing-private-key"])
	gt.True(t, flagNames["signing-public-key"])
}

func TestGitIdentityDefaults(t *testing.T) {
	cfg := &config.Git{}
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

	gt.V(t, cfg.AuthorName()).Equal("gitea-actions[bot]")
	gt.V(t, cfg.AuthorEmail()).Equal("gitea-actions[bot]@noreply.gitea.io")
	gt.V(t, cfg.CommitterName()).Equal("gitea-actions[bot]")
	gt.V(t, cfg.CommitterEmail()).Equal("gitea-actions[bot]@noreply.gitea.io")
}

func TestGitSigningWithoutKeys(t *testing.T) {
	cfg := &config.Git{}
	signing := gt.R1(cfg.NewSigning()).NoError(t)
	defer signing.Close()

	gt.V(t, signing.Enabled()).Equal(false)
}
