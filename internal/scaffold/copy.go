package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirMode  os.FileMode = 0755
	fileMode os.FileMode = 0644
)

// keepHidden names dotfiles that are copied despite the hidden-entry rule.
var keepHidden = map[string]bool{
	".gitignore": true,
}

// ShouldCopy reports whether a template entry named name is copied. Hidden
// entries are skipped, with the exceptions in keepHidden.
func ShouldCopy(name string) bool {
	return !strings.HasPrefix(name, ".") || keepHidden[name]
}

// CopyTree copies the subtree root of src into dstDir on dst, keeping the
// relative layout under dstDir/root. Entries rejected by ShouldCopy are
// skipped, directories together with their contents. Symlinks and other
// special files are skipped too. A missing root copies nothing.
//
// It returns the slash-separated paths of the copied files relative to the
// template root, in walk order. A failure part way leaves the files copied
// so far in place.
func CopyTree(src fs.FS, root string, dst afero.Fs, dstDir string) ([]string, error) {
	if _, err := fs.Stat(src, root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var copied []string
	err := fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("copying %s: %w", p, err)
		}
		if p != root && !ShouldCopy(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dstDir, filepath.FromSlash(p))
		switch {
		case d.IsDir():
			if err := dst.MkdirAll(target, dirMode); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case d.Type().IsRegular():
			if err := CopyFile(src, p, dst, target); err != nil {
				return err
			}
			copied = append(copied, p)
		}
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

// CopyFile copies the file name from src to target on dst, creating parent
// directories as needed. The hidden-entry rule does not apply.
func CopyFile(src fs.FS, name string, dst afero.Fs, target string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("copying %s: %w", name, err)
	}
	return writeFile(dst, target, data)
}

func writeFile(dst afero.Fs, target string, data []byte) error {
	if err := dst.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}
	if err := afero.WriteFile(dst, target, data, fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// exists reports whether name is present in src.
func exists(src fs.FS, name string) bool {
	_, err := fs.Stat(src, path.Clean(name))
	return err == nil
}
