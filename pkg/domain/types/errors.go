package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrValidation covers missing or malformed CLI input. The run exits
	// with code 1 before any update work starts.
	ErrValidation = goerr.New("validation error")

	// ErrWorktree covers checkout acquisition or release failures. Fatal
	// to the current update attempt only.
	ErrWorktree = goerr.New("worktree error")

	// ErrBranchActive means a checkout was requested for a branch that
	// already has a live checkout. This is a contract violation and
	// aborts the whole run instead of being swallowed per attempt.
	ErrBranchActive = goerr.New("branch already has an active worktree")

	// ErrUpdateTool covers failures of the external locking tool. Fatal
	// to the current update attempt only, never retried internally.
	ErrUpdateTool = goerr.New("lock update tool error")

	// ErrPublish covers pull request creation failures. The committed
	// branch is left in place for manual follow-up.
	ErrPublish = goerr.New("publish error")

	// ErrInterrupted is the outcome of a user-requested cancellation.
	// The run exits with code 130.
	ErrInterrupted = goerr.New("interrupted")

	ErrInvalidOption = goerr.New("invalid option")
)
