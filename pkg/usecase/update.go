package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/interfaces"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/model"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/errutil"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
)

// ProcessInput carries the per-run configuration of the update loop. All
// identity and endpoint configuration is resolved at startup; nothing is
// read from ambient state while the loop runs.
type ProcessInput struct {
	Root            string
	ExcludePatterns string
	BaseBranch      string
	BranchSuffix    string
	AutoMerge       bool
}

// ProcessUpdates runs one update attempt per (flake file, input) pair,
// strictly in discovery order. Attempts are fully serialized and isolated:
// each gets its own checkout, and a failing attempt is recorded and logged
// while the loop moves on to the next input. Only two conditions abort the
// run: a worktree contract violation, and cancellation, which is reported
// as types.ErrInterrupted rather than as a per-attempt failure.
func (x *UseCase) ProcessUpdates(ctx context.Context, input *ProcessInput) ([]model.UpdateResult, error) {
	logger := logging.From(ctx)

	flakes, err := x.DiscoverFlakeFiles(ctx, input.Root, input.ExcludePatterns)
	if err != nil {
		return nil, err
	}
	if len(flakes) == 0 {
		logger.Info("No flake files found")
		return nil, nil
	}

	logger.Info("Found flake files to process", "count", len(flakes))

	var results []model.UpdateResult
	branchOwner := map[types.BranchName]string{}

	for _, flake := range flakes {
		logger.Info("Processing flake", "path", flake.Path, "inputs", flake.Inputs)

		for _, name := range flake.Inputs {
			if ctx.Err() != nil {
				return results, goerr.Wrap(types.ErrInterrupted, "update run cancelled")
			}

			attempt := model.UpdateAttempt{
				FlakePath: flake.Path,
				Input:     name,
				Suffix:    input.BranchSuffix,
			}
			branch := attempt.BranchName()

			// Branch names are deterministic per (flake dir, input), so a
			// repeat within one run means two manifests sanitize to the
			// same name. The later push wins; make that visible.
			if prev, ok := branchOwner[branch]; ok && prev != flake.Path {
				logger.Warn("Branch name collides with an earlier attempt, last push wins",
					"branch", branch,
					"previous", prev,
					"path", flake.Path,
				)
			}
			branchOwner[branch] = flake.Path

			result := x.processAttempt(ctx, input, attempt)
			results = append(results, result)

			if result.Err != nil {
				if ctx.Err() != nil {
					return results, goerr.Wrap(types.ErrInterrupted, "update run cancelled")
				}
				if errors.Is(result.Err, types.ErrBranchActive) {
					return results, result.Err
				}
				errutil.HandleError(ctx, "Failed to update input", goerr.Wrap(result.Err, "update attempt failed",
					goerr.V("input", name),
					goerr.V("flakePath", flake.Path),
				))
			}
		}
	}

	logger.Info("Completed processing all flake updates", "attempts", len(results))
	return results, nil
}

// processAttempt drives a single update attempt through its states:
// acquire a checkout, run the locking tool, commit-and-push when anything
// changed, then open the review request. The checkout is released on every
// exit path via the deferred Close.
func (x *UseCase) processAttempt(ctx context.Context, input *ProcessInput, attempt model.UpdateAttempt) model.UpdateResult {
	logger := logging.From(ctx)

	result := model.UpdateResult{
		FlakePath: attempt.FlakePath,
		Input:     attempt.Input,
		Branch:    attempt.BranchName(),
	}

	logger.Info("Updating input",
		"input", attempt.Input,
		"path", attempt.FlakePath,
		"branch", result.Branch,
	)

	wt, err := x.clients.GitRepo().Acquire(ctx, result.Branch)
	if err != nil {
		result.Status = model.StatusFailed
		result.Err = err
		return result
	}
	defer func() {
		if cerr := wt.Close(); cerr != nil {
			logger.Warn("Failed to release worktree", "branch", result.Branch, "error", cerr)
		}
	}()

	if err := x.clients.LockUpdater().UpdateInput(ctx, attempt.Input, attempt.FlakePath, wt.Path()); err != nil {
		result.Status = model.StatusFailed
		result.Err = err
		return result
	}

	changed, err := wt.CommitAndPush(ctx, attempt.CommitMessage())
	if err != nil {
		result.Status = model.StatusFailed
		result.Err = err
		return result
	}
	if !changed {
		logger.Info(fmt.Sprintf("No changes for input %s in %s", attempt.Input, attempt.FlakePath))
		result.Status = model.StatusNoChange
		return result
	}

	err = x.clients.Publisher().CreatePullRequest(ctx, &interfaces.CreatePullRequestInput{
		Head:      result.Branch,
		Base:      input.BaseBranch,
		Title:     attempt.CommitMessage(),
		Body:      attempt.PullRequestBody(),
		AutoMerge: input.AutoMerge,
	})
	if err != nil {
		// The branch stays pushed for manual follow-up.
		result.Status = model.StatusFailed
		result.Err = err
		return result
	}

	result.Status = model.StatusPublished
	return result
}
