package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrTargetExists is returned by Provision when the destination is taken.
var ErrTargetExists = errors.New("already exists")

// Provision creates dir on fsys. Any existing entry at dir, including a file
// or a dangling symlink, fails with ErrTargetExists before anything is
// written.
func Provision(fsys afero.Fs, dir string) error {
	var err error
	if l, ok := fsys.(afero.Lstater); ok {
		_, _, err = l.LstatIfPossible(dir)
	} else {
		_, err = fsys.Stat(dir)
	}
	switch {
	case err == nil:
		return fmt.Errorf("directory %s %w", filepath.Base(dir), ErrTargetExists)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := fsys.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
