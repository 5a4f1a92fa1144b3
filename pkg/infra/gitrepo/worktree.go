package gitrepo

import (
	"context"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/interfaces"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/safe"
)

// Worktree is an isolated checkout owned by a single update attempt. The
// attempt mutates lock content inside it, commits through it, and closes it
// when done. Closing is idempotent.
type Worktree struct {
	manager *Manager
	branch  types.BranchName
	path    string
	repo    *git.Repository
	closed  bool
}

var _ interfaces.Worktree = (*Worktree)(nil)

// Path is the root directory of the checkout.
func (x *Worktree) Path() string {
	return x.path
}

// Branch is the branch this checkout is bound to.
func (x *Worktree) Branch() types.BranchName {
	return x.branch
}

// CommitAndPush stages every change in the checkout. When staging produces
// no diff against HEAD, it returns false without committing or pushing.
// Otherwise it commits with the configured author and committer identities
// (signed when signing is configured) and force-pushes the branch to the
// remote, replacing any branch left over from a previous run. The returned
// boolean is the sole gate for opening a review request.
func (x *Worktree) CommitAndPush(ctx context.Context, message string) (bool, error) {
	tree, err := x.repo.Worktree()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree")
	}

	if err := tree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, goerr.Wrap(err, "failed to stage changes")
	}

	status, err := tree.Status()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get worktree status")
	}
	if status.IsClean() {
		return false, nil
	}

	now := time.Now()
	opts := &git.CommitOptions{
		Author: &object.Signature{
			Name:  x.manager.author.Name,
			Email: x.manager.author.Email,
			When:  now,
		},
		Committer: &object.Signature{
			Name:  x.manager.committer.Name,
			Email: x.manager.committer.Email,
			When:  now,
		},
		Signer: x.manager.signing.Signer(),
	}

	commit, err := tree.Commit(message, opts)
	if err != nil {
		return false, goerr.Wrap(err, "failed to commit", goerr.V("message", message))
	}

	logging.From(ctx).Debug("committed changes",
		"branch", x.branch,
		"commit", commit.String(),
		"message", message,
	)

	if err := x.manager.push(ctx, x.repo, x.branch); err != nil {
		return false, err
	}

	return true, nil
}

// Close removes the checkout directory and releases the branch name so a
// later attempt may reuse it. Safe to call more than once.
func (x *Worktree) Close() error {
	if x.closed {
		return nil
	}
	x.closed = true

	safe.RemoveAll(x.path)
	x.manager.release(x.branch)
	return nil
}
