package model

import (
	"fmt"
	"path"
	"strings"

	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
)

// UpdateAttempt is one unit of work: updating a single input of a single
// flake file. Branch name, commit message and pull request text are all
// pure functions of the attempt, so re-running the same attempt in a fresh
// run targets the identical branch.
type UpdateAttempt struct {
	FlakePath string
	Input     string
	Suffix    string
}

// BranchName derives the update branch as
// update-<flake dir>-<input>[-<suffix>] with path separators replaced by
// hyphens and leading/trailing hyphens stripped. A flake at the repository
// root contributes no directory segment.
func (x UpdateAttempt) BranchName() types.BranchName {
	name := "update"
	if dir := flakeDir(x.FlakePath); dir != "" {
		name += "-" + dir
	}
	name += "-" + x.Input

	name = sanitizeSegment(name)
	if suffix := sanitizeSegment(strings.TrimSpace(x.Suffix)); suffix != "" {
		name += "-" + suffix
	}

	return types.BranchName(name)
}

// CommitMessage is "Update <input>" for a root flake and
// "Update <input> in <dir>" otherwise. The same text is used as the pull
// request title.
func (x UpdateAttempt) CommitMessage() string {
	if dir := flakeDir(x.FlakePath); dir != "" {
		return fmt.Sprintf("Update %s in %s", x.Input, dir)
	}
	return fmt.Sprintf("Update %s", x.Input)
}

// PullRequestBody describes the change for reviewers.
func (x UpdateAttempt) PullRequestBody() string {
	return fmt.Sprintf(
		"This PR updates the `%s` input in `%s`.\n\nGenerated by update-flake-inputs action.",
		x.Input, x.FlakePath,
	)
}

func flakeDir(flakePath string) string {
	dir := path.Dir(flakePath)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

func sanitizeSegment(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	return strings.Trim(s, "-")
}
