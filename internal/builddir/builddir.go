// Package builddir manages the lifecycle of the directories cmake stages
// its artifacts in.
package builddir

import (
	"errors"
	"io/fs"
	"os"

	"github.com/qiniu/x/log"
)

// Prepare makes sure path exists as a directory and returns it. With wipe
// set, an existing directory is removed first so the build starts from an
// empty tree. A non-directory at path is left alone and the create reports
// the conflict.
func Prepare(path string, wipe bool) (string, error) {
	if wipe {
		if err := Remove(path); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes the directory tree at path. Paths that are missing or are
// not directories are skipped.
func Remove(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Infof("not removing %s (does not exist)", path)
		return nil
	case err != nil:
		return err
	case !info.IsDir():
		log.Infof("not removing %s (not a directory)", path)
		return nil
	}
	log.Infof("removing %s", path)
	return os.RemoveAll(path)
}
