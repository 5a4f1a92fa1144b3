package usecase

import (
	"regexp"
	"strings"
)

var (
	// inputs.<name>... = ...; declared one attribute path at a time.
	inputAttrPathRe = regexp.MustCompile(`^inputs\.([A-Za-z0-9_-]+)`)

	// inputs = { <name>... }; block form.
	inputsBlockRe = regexp.MustCompile(`^inputs\s*=\s*\{(.*)$`)

	// An attribute inside the inputs block: name followed by '.' or '='.
	blockAttrRe = regexp.MustCompile(`^([A-Za-z0-9_-]+)\s*[.=]`)
)

// parseFlakeInputs extracts the declared input names from flake.nix source,
// in order of appearance. Both declaration styles are recognized:
//
//	inputs.nixpkgs.url = "github:NixOS/nixpkgs";
//	inputs = { nixpkgs.url = "..."; flake-utils = { url = "..."; }; };
//
// Nested attributes (such as follows declarations inside an input) do not
// count as inputs, and the implicit self input is never included.
func parseFlakeInputs(src string) []string {
	var inputs []string
	seen := map[string]struct{}{}
	add := func(name string) {
		if name == "self" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		inputs = append(inputs, name)
	}

	inBlock := false
	depth := 0

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)

		if !inBlock {
			if m := inputAttrPathRe.FindStringSubmatch(line); m != nil {
				add(m[1])
				continue
			}
			if m := inputsBlockRe.FindStringSubmatch(line); m != nil {
				inBlock = true
				depth = 1
				line = strings.TrimSpace(m[1])
			} else {
				continue
			}
		}

		// Inside the inputs block: names appear at depth 1 only.
		if depth == 1 {
			if m := blockAttrRe.FindStringSubmatch(line); m != nil {
				add(m[1])
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 {
			inBlock = false
		}
	}

	return inputs
}
