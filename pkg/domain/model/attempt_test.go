package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/model"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
)

func TestBranchName(t *testing.T) {
	t.Run("root flake has no directory segment", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "flake.nix", Input: "nixpkgs"}
		gt.V(t, attempt.BranchName()).Equal(types.BranchName("update-nixpkgs"))
	})

	t.Run("nested flake includes directory", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "services/api/flake.nix", Input: "nixpkgs"}
		gt.V(t, attempt.BranchName()).Equal(types.BranchName("update-services-api-nixpkgs"))
	})

	t.Run("suffix is appended", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "flake.nix", Input: "nixpkgs", Suffix: "weekly"}
		gt.V(t, attempt.BranchName()).Equal(types.BranchName("update-nixpkgs-weekly"))
	})

	t.Run("suffix with slashes and padding is sanitized", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "flake.nix", Input: "nixpkgs", Suffix: " -ci/nightly- "}
		gt.V(t, attempt.BranchName()).Equal(types.BranchName("update-nixpkgs-ci-nightly"))
	})

	t.Run("blank suffix is ignored", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "flake.nix", Input: "nixpkgs", Suffix: "   "}
		gt.V(t, attempt.BranchName()).Equal(types.BranchName("update-nixpkgs"))
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "sub/dir/flake.nix", Input: "flake-utils", Suffix: "v2"}
		gt.V(t, attempt.BranchName()).Equal(attempt.BranchName())
	})
}

func TestCommitMessage(t *testing.T) {
	t.Run("root flake omits the directory", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "flake.nix", Input: "nixpkgs"}
		gt.V(t, attempt.CommitMessage()).Equal("Update nixpkgs")
	})

	t.Run("nested flake names the directory", func(t *testing.T) {
		attempt := model.UpdateAttempt{FlakePath: "services/api/flake.nix", Input: "nixpkgs"}
		gt.V(t, attempt.CommitMessage()).Equal("Update nixpkgs in services/api")
	})
}

func TestPullRequestBody(t *testing.T) {
	attempt := model.UpdateAttempt{FlakePath: "sub/flake.nix", Input: "flake-utils"}
	gt.V(t, attempt.PullRequestBody()).Equal(
		"This PR updates the `flake-utils` input in `sub/flake.nix`.\n\nGenerated by update-flake-inputs action.",
	)
}
