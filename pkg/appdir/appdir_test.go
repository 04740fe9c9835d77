package appdir

import (
	"path/filepath"
	"testing"
)

func TestResolveAbsolute(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs.db")
	got, err := Resolve(p)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != p {
		t.Errorf("Expected %q, got %q", p, got)
	}
}

func TestResolveRelative(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	appDirCache = ""
	defer func() { appDirCache = "" }()

	got, err := Resolve("logs.db")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := filepath.Join(home, dirName, "logs.db")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
