package model

// FlakeFile identifies one lockfile-bearing flake.nix by its path relative
// to the repository root, together with the input names declared in it.
// Inputs keep their order of appearance so branch naming is stable within
// a single run. A FlakeFile is produced once per run and never mutated.
type FlakeFile struct {
	Path   string
	Inputs []string
}

// HasInputs reports whether the flake declares any updatable input.
// A flake without inputs is still discovered; the update loop just has
// nothing to do for it.
func (x FlakeFile) HasInputs() bool {
	return len(x.Inputs) > 0
}
