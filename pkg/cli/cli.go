package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/gots/slice"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/cli/config"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/model"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra/gitrepo"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra/nix"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/usecase"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

func Run(ctx context.Context, argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		verbose   bool

		excludePatterns string
		baseBranch      string
		branchSuffix    string
		autoMerge       bool
		nixPath         string

		giteaCfg  config.Gitea
		gitCfg    config.Git
		sentryCfg config.Sentry
	)

	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Sources:     cli.EnvVars("LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Sources:     cli.EnvVars("LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Sources:     cli.EnvVars("LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "-",
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Enable verbose logging",
			Destination: &verbose,
		},
		&cli.StringFlag{
			Name:        "exclude-patterns",
			Usage:       "Comma-separated list of glob patterns to exclude flake.nix files",
			Sources:     cli.EnvVars("EXCLUDE_PATTERNS"),
			Destination: &excludePatterns,
		},
		&cli.StringFlag{
			Name:        "base-branch",
			Usage:       "Base branch to create PRs against",
			Value:       "main",
			Destination: &baseBranch,
		},
		&cli.StringFlag{
			Name:        "branch-suffix",
			Usage:       "Optional suffix to append to update branches",
			Sources:     cli.EnvVars("BRANCH_SUFFIX"),
			Destination: &branchSuffix,
		},
		&cli.BoolFlag{
			Name:        "auto-merge",
			Usage:       "Automatically merge PRs when checks succeed",
			Destination: &autoMerge,
		},
		&cli.StringFlag{
			Name:        "nix-binary",
			Usage:       "Path to nix binary",
			Value:       "nix",
			Sources:     cli.EnvVars("NIX_BINARY"),
			Destination: &nixPath,
		},
	}

	app := &cli.Command{
		Name:  "update-flake-inputs",
		Usage: "Update Nix flake inputs and create pull requests on Gitea",
		Flags: slice.Flatten(
			globalFlags,
			giteaCfg.Flags(),
			gitCfg.Flags(),
			sentryCfg.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if verbose {
				logLevel = "debug"
			}
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			logging.Default().Info("starting update",
				slog.Any("Gitea", giteaCfg),
				slog.Any("Git", gitCfg),
				slog.String("BaseBranch", baseBranch),
				slog.String("BranchSuffix", branchSuffix),
				slog.String("ExcludePatterns", excludePatterns),
				slog.Bool("AutoMerge", autoMerge),
				slog.String("NixBinary", nixPath),
			)

			signing, err := gitCfg.NewSigning()
			if err != nil {
				return err
			}
			defer signing.Close()

			manager, err := gitrepo.New(".",
				gitrepo.WithBaseBranch(baseBranch),
				gitrepo.WithToken(giteaCfg.Token()),
				gitrepo.WithAuthor(gitCfg.AuthorName(), gitCfg.AuthorEmail()),
				gitrepo.WithCommitter(gitCfg.CommitterName(), gitCfg.CommitterEmail()),
				gitrepo.WithSigning(signing),
			)
			if err != nil {
				return err
			}

			publisher, err := giteaCfg.NewPublisher(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(
				infra.WithLockUpdater(nix.New(nixPath)),
				infra.WithPublisher(publisher),
				infra.WithGitRepo(manager),
			))

			results, err := uc.ProcessUpdates(ctx, &usecase.ProcessInput{
				Root:            ".",
				ExcludePatterns: excludePatterns,
				BaseBranch:      baseBranch,
				BranchSuffix:    branchSuffix,
				AutoMerge:       autoMerge,
			})
			if err != nil {
				return err
			}

			var published, noChange, failed int
			for _, r := range results {
				switch r.Status {
				case model.StatusPublished:
					published++
				case model.StatusNoChange:
					noChange++
				case model.StatusFailed:
					failed++
				}
			}
			logging.Default().Info("Run summary",
				slog.Int("published", published),
				slog.Int("noChange", noChange),
				slog.Int("failed", failed),
			)

			return nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
