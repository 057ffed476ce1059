// Package skeleton bundles the template source tree copied into every new
// project. The tree is embedded with the "all:" prefix so dotfiles such as
// .env.example are included; filtering happens at copy time.
package skeleton

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:files
var files embed.FS

// Named entries of the template root.
const (
	SourceDir  = "src"
	DocsDir    = "docs"
	EnvExample = ".env.example"
)

// Subtrees lists the directories copied into a new project, in copy order.
// Each one is optional.
var Subtrees = []string{SourceDir, DocsDir}

// FS returns the embedded template tree rooted at its top directory.
func FS() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// Open returns the template tree to use: dir on disk when set, the embedded
// tree otherwise.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return FS(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}
