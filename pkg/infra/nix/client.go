package nix

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/interfaces"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
)

// Client wraps the nix binary. All mutation is confined to the lock content
// of the directory a command runs in.
type Client struct {
	path string
}

var _ interfaces.LockUpdater = (*Client)(nil)

func New(path string) *Client {
	return &Client{path: path}
}

// Run executes nix with the given arguments inside dir and blocks until it
// exits. A nonzero exit is returned as an error carrying the combined output.
func (x *Client) Run(ctx context.Context, args []string, dir string) error {
	logging.From(ctx).Debug("executing nix", "path", x.path, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "failed to run nix",
			goerr.V("args", args),
			goerr.V("dir", dir),
			goerr.V("output", buf.String()),
		)
	}

	return nil
}

// UpdateInput updates the pinned reference of exactly one input of the flake
// at flakePath inside the checkout rooted at dir, leaving all other inputs
// pinned. No retry happens here; the update loop owns failure isolation.
func (x *Client) UpdateInput(ctx context.Context, input, flakePath, dir string) error {
	flakeDir := filepath.Join(dir, filepath.Dir(flakePath))

	err := x.Run(ctx, []string{
		"--extra-experimental-features", "nix-command flakes",
		"flake", "update", input,
		"--flake", flakeDir,
	}, dir)
	if err != nil {
		return goerr.Wrap(types.ErrUpdateTool, "failed to update flake input",
			goerr.V("input", input),
			goerr.V("flakePath", flakePath),
			goerr.V("error", err),
		)
	}

	return nil
}
