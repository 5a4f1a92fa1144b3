package model

import "github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"

// UpdateStatus is the terminal state of one update attempt.
type UpdateStatus string

const (
	// StatusNoChange means the locking tool ran but the lock content was
	// already up to date, so nothing was committed or published.
	StatusNoChange UpdateStatus = "no-change"

	// StatusPublished means a real change was committed, pushed, and a
	// pull request was opened for it.
	StatusPublished UpdateStatus = "published"

	// StatusFailed means the attempt was abandoned due to an error. The
	// failure never affects other attempts in the same run.
	StatusFailed UpdateStatus = "failed"
)

// UpdateResult records the outcome of one update attempt. The update loop
// consumes results explicitly instead of relying on catch-and-log control
// flow, which keeps failure isolation testable without external processes.
type UpdateResult struct {
	FlakePath string
	Input     string
	Branch    types.BranchName
	Status    UpdateStatus
	Err       error
}
