package skeleton

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedTree(t *testing.T) {
	tree := FS()

	for _, dir := range Subtrees {
		info, err := fs.Stat(tree, dir)
		if err != nil {
			t.Fatalf("subtree %s missing from embedded template: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s should be a directory", dir)
		}
	}

	if _, err := fs.Stat(tree, EnvExample); err != nil {
		t.Errorf("%s missing from embedded template: %v", EnvExample, err)
	}
	if _, err := fs.Stat(tree, "docs/ARCHITECTURE.md"); err != nil {
		t.Errorf("docs/ARCHITECTURE.md missing: %v", err)
	}
}

func TestEmbeddedTreeHasNoHiddenNoise(t *testing.T) {
	err := fs.WalkDir(FS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Name() == ".DS_Store" {
			t.Errorf("unexpected %s in embedded template", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestOpen(t *testing.T) {
	tree, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error: %v", err)
	}
	if _, err := fs.Stat(tree, SourceDir); err != nil {
		t.Errorf("embedded tree should contain %s: %v", SourceDir, err)
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0755); err != nil {
		t.Fatal(err)
	}
	tree, err = Open(dir)
	if err != nil {
		t.Fatalf("Open(dir) error: %v", err)
	}
	if _, err := fs.Stat(tree, "docs"); err != nil {
		t.Errorf("on-disk tree should contain docs: %v", err)
	}

	if _, err := Open(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing template dir")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(file); err == nil {
		t.Error("expected error for a file path")
	}
}
