package main

import (
	"context"
	"errors"
	"os"

	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/cli"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, types.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
