package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/model"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/usecase"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const flakeWithNixpkgs = `{
  inputs.nixpkgs.url = "github:NixOS/nixpkgs";
  outputs = { self, nixpkgs }: {};
}`

func TestDiscoverFlakeFiles(t *testing.T) {
	uc := usecase.New(infra.New())
	ctx := context.Background()

	t.Run("finds flakes at root and in subdirectories", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "services/api/flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "services/api/main.go", "package main")

		flakes := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "")).NoError(t)
		gt.A(t, flakes).Length(2)
		gt.V(t, flakes[0].Path).Equal("flake.nix")
		gt.A(t, flakes[0].Inputs).Equal([]string{"nixpkgs"})
		gt.V(t, flakes[1].Path).Equal("services/api/flake.nix")
	})

	t.Run("exclude patterns filter by relative path", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "tests/fixtures/flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "examples/demo/flake.nix", flakeWithNixpkgs)

		flakes := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "tests/**,examples/**")).NoError(t)
		gt.A(t, flakes).Length(1)
		gt.V(t, flakes[0].Path).Equal("flake.nix")
	})

	t.Run("invalid exclude pattern fails", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "flake.nix", flakeWithNixpkgs)

		_, err := uc.DiscoverFlakeFiles(ctx, root, "tests/[")
		gt.Error(t, err)
	})

	t.Run("git directory is not walked", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".git/some/flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "flake.nix", flakeWithNixpkgs)

		flakes := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "")).NoError(t)
		gt.A(t, flakes).Length(1)
		gt.V(t, flakes[0].Path).Equal("flake.nix")
	})

	t.Run("flake without inputs is still returned", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "flake.nix", `{ description = "static"; outputs = { self }: {}; }`)

		flakes := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "")).NoError(t)
		gt.A(t, flakes).Length(1)
		gt.V(t, flakes[0].HasInputs()).Equal(false)
	})

	t.Run("no flakes yields empty result", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "README.md", "no flakes here")

		flakes := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "")).NoError(t)
		gt.A(t, flakes).Length(0)
	})

	t.Run("ordering is stable for identical trees", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "a/flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "b/flake.nix", flakeWithNixpkgs)
		writeFile(t, root, "flake.nix", flakeWithNixpkgs)

		first := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "")).NoError(t)
		second := gt.R1(uc.DiscoverFlakeFiles(ctx, root, "")).NoError(t)

		paths := func(flakes []model.FlakeFile) []string {
			var out []string
			for _, f := range flakes {
				out = append(out, f.Path)
			}
			return out
		}
		gt.A(t, paths(first)).Equal(paths(second))
	})
}
