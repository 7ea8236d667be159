package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindFromNestedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "runs")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(root, DefaultPath)
	if err := os.WriteFile(want, []byte("miloplot:\n  viewer: feh\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, ok := Find(nested)
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (found=%v)", want, got, ok)
	}

	data := filepath.Join(nested, "a.dat")
	if err := os.WriteFile(data, []byte("TIME\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, ok := Find(data); !ok || got != want {
		t.Fatalf("file paths search from their directory, got %s", got)
	}
}

func TestFindNotFound(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "a", DefaultPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, ok := Find(filepath.Join(tmp, "a")); ok {
		t.Fatalf("a directory named like the config must not match")
	}
	if _, ok := Find(""); ok {
		t.Fatalf("empty start must not match")
	}
}
