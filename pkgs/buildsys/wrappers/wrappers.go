// Package wrappers renders invocations of create-wrappers, which generates
// launcher scripts for the binaries of a conda environment.
package wrappers

import (
	"errors"
	"fmt"

	"github.com/autodiff/adtask/pkgs/buildsys"
	"github.com/autodiff/adtask/pkgs/platform"
)

// ErrNoPrefix is returned when no conda environment prefix is known.
var ErrNoPrefix = errors.New("wrappers: conda environment prefix is not set (is CONDA_PREFIX defined?)")

// BinDir returns the directory holding the environment's executables.
func BinDir(p platform.Profile, prefix string) string {
	if p.Windows() {
		return p.Join(prefix, "Library", "bin")
	}
	return p.Join(prefix, "bin")
}

// GenerateStep renders create-wrappers for the environment at prefix,
// writing the launchers to destDir.
func GenerateStep(p platform.Profile, prefix, destDir string) (buildsys.Step, error) {
	if prefix == "" {
		return buildsys.Step{}, ErrNoPrefix
	}
	line := buildsys.StripAndJoin(fmt.Sprintf(`
		create-wrappers
			-t conda
			--bin-dir %s
			--dest-dir %s
			--conda-env-dir %s
	`, BinDir(p, prefix), destDir, prefix))
	return buildsys.Step{Name: "wrappers", Line: line}, nil
}
