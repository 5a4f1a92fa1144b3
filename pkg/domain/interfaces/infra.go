package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . LockUpdater ReviewPublisher GitRepo Worktree

import (
	"context"

	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
)

// LockUpdater invokes the external locking mechanism for exactly one input,
// leaving all other inputs pinned. The side effect is confined to the lock
// content inside dir. Failures are not retried here; retry isolation belongs
// to the update loop.
type LockUpdater interface {
	UpdateInput(ctx context.Context, input string, flakePath string, dir string) error
}

// ReviewPublisher opens pull requests against the hosting service. Token
// validation is the implementation's concern and happens at construction.
type ReviewPublisher interface {
	CreatePullRequest(ctx context.Context, input *CreatePullRequestInput) error
}

type CreatePullRequestInput struct {
	Head      types.BranchName
	Base      string
	Title     string
	Body      string
	AutoMerge bool
}

// GitRepo hands out isolated checkouts bound to branch names. At most one
// live checkout may exist per branch name at a time.
type GitRepo interface {
	Acquire(ctx context.Context, branch types.BranchName) (Worktree, error)
}

// Worktree is an isolated checkout owned by a single update attempt. Close
// must reclaim the checkout on every exit path of the attempt.
type Worktree interface {
	Path() string
	CommitAndPush(ctx context.Context, message string) (bool, error)
	Close() error
}
