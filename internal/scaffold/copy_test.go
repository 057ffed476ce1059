package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldCopy(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"index.ts", true},
		{"README.md", true},
		{".gitignore", true},
		{".DS_Store", false},
		{".env", false},
		{".env.example", false},
		{".git", false},
		{".gitignore.bak", false},
		{"gitignore", true},
		{"node_modules", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldCopy(tt.name), tt.name)
	}
}

func TestCopyTree(t *testing.T) {
	src := fstest.MapFS{
		"src/a.ts":          {Data: []byte("a")},
		"src/nested/b.ts":   {Data: []byte("b")},
		"src/.DS_Store":     {Data: []byte("x")},
		"src/.gitignore":    {Data: []byte("dist\n")},
		"src/.git/HEAD":     {Data: []byte("ref")},
		"src/empty/.keep":   {Data: []byte("")},
		"src/special":       {Data: []byte("a.ts"), Mode: fs.ModeSymlink},
		"other/ignored.txt": {Data: []byte("x")},
	}
	dst := afero.NewMemMapFs()

	copied, err := CopyTree(src, "src", dst, "/out")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/.gitignore", "src/a.ts", "src/nested/b.ts"}, copied)

	data, err := afero.ReadFile(dst, "/out/src/nested/b.ts")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	for _, p := range []string{"/out/src/.DS_Store", "/out/src/.git", "/out/src/special", "/out/other"} {
		ok, _ := afero.Exists(dst, p)
		assert.False(t, ok, p)
	}
	ok, _ := afero.DirExists(dst, "/out/src/empty")
	assert.True(t, ok, "directories are created even when all their files are filtered")
}

func TestCopyTreeMissingRoot(t *testing.T) {
	dst := afero.NewMemMapFs()
	copied, err := CopyTree(fstest.MapFS{}, "docs", dst, "/out")
	require.NoError(t, err)
	assert.Empty(t, copied)

	ok, _ := afero.Exists(dst, "/out/docs")
	assert.False(t, ok)
}

func TestCopyTreeFileModes(t *testing.T) {
	src := fstest.MapFS{
		"src/run.sh": {Data: []byte("#!/bin/sh\n"), Mode: 0555},
	}
	dst := afero.NewMemMapFs()
	_, err := CopyTree(src, "src", dst, "/out")
	require.NoError(t, err)

	info, err := dst.Stat("/out/src/run.sh")
	require.NoError(t, err)
	assert.Equal(t, fileMode, info.Mode().Perm())
}

func TestCopyTreeSkipsOnDiskSymlinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "real.ts"), []byte("real"), 0644))
	if err := os.Symlink("real.ts", filepath.Join(dir, "src", "alias.ts")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	dst := afero.NewMemMapFs()
	copied, err := CopyTree(os.DirFS(dir), "src", dst, "/out")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/real.ts"}, copied)
}

func TestCopyFile(t *testing.T) {
	src := fstest.MapFS{".env.example": {Data: []byte("KEY=\n")}}
	dst := afero.NewMemMapFs()

	require.NoError(t, CopyFile(src, ".env.example", dst, "/out/deep/.env.example"))
	data, err := afero.ReadFile(dst, "/out/deep/.env.example")
	require.NoError(t, err)
	assert.Equal(t, "KEY=\n", string(data))

	err = CopyFile(src, "missing", dst, "/out/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying missing")
}

func TestProvision(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Provision(fsys, "/base/app"))

	ok, _ := afero.DirExists(fsys, "/base/app")
	assert.True(t, ok)

	err := Provision(fsys, "/base/app")
	assert.ErrorIs(t, err, ErrTargetExists)
	assert.EqualError(t, err, "directory app already exists")
}

func TestProvisionDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "app")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), target); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	assert.ErrorIs(t, Provision(afero.NewOsFs(), target), ErrTargetExists)
}
