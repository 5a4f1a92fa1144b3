package usecase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/model"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
)

const flakeFileName = "flake.nix"

// DiscoverFlakeFiles walks the working tree from root and returns every
// flake.nix, excluding paths that match one of the comma-separated glob
// patterns. An empty pattern list excludes nothing. The result is computed
// fresh on every call and ordered by walk order, which keeps branch naming
// stable within a run. Flakes without declared inputs are still returned.
func (x *UseCase) DiscoverFlakeFiles(ctx context.Context, root, excludePatterns string) ([]model.FlakeFile, error) {
	patterns, err := parseExcludePatterns(excludePatterns)
	if err != nil {
		return nil, err
	}

	var flakes []model.FlakeFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != flakeFileName {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve relative path", goerr.V("path", path))
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				logging.From(ctx).Debug("excluding flake file", "path", rel, "pattern", pattern)
				return nil
			}
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return goerr.Wrap(err, "failed to read flake file", goerr.V("path", rel))
		}

		flakes = append(flakes, model.FlakeFile{
			Path:   rel,
			Inputs: parseFlakeInputs(string(raw)),
		})
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to discover flake files", goerr.V("root", root))
	}

	return flakes, nil
}

func parseExcludePatterns(raw string) ([]string, error) {
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, goerr.Wrap(types.ErrValidation, "invalid exclude pattern", goerr.V("pattern", p))
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
