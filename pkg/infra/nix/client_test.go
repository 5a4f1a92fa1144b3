package nix_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra/nix"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/testutil"
)

func Test(t *testing.T) {
	path := testutil.GetEnvOrSkip(t, "TEST_NIX_PATH")

	client := nix.New(path)
	ctx := context.Background()

	gt.NoError(t, client.Run(ctx, []string{
		"--extra-experimental-features", "nix-command flakes",
		"--version",
	}, t.TempDir()))
}

func TestUpdateInput(t *testing.T) {
	path := testutil.GetEnvOrSkip(t, "TEST_NIX_PATH")

	client := nix.New(path)
	ctx := context.Background()

	t.Run("update in a directory without a flake fails", func(t *testing.T) {
		err := client.UpdateInput(ctx, "nixpkgs", "flake.nix", t.TempDir())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUpdateTool))
	})

	t.Run("update a real flake input", func(t *testing.T) {
		flake := testutil.GetEnvOrSkip(t, "TEST_NIX_FLAKE_DIR")
		gt.NoError(t, client.UpdateInput(ctx, "nixpkgs", "flake.nix", flake))

		lock := gt.R1(os.ReadFile(flake + "/flake.lock")).NoError(t)
		gt.S(t, string(lock)).Contains("nixpkgs")
	})
}

func TestRunWithInvalidBinary(t *testing.T) {
	client := nix.New("/non/existent/nix")
	ctx := context.Background()

	err := client.Run(ctx, []string{"--version"}, t.TempDir())
	gt.Error(t, err)
}
