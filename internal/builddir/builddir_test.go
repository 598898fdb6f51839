package builddir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrepareCreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "build")
	got, err := Prepare(dir, false)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if got != dir {
		t.Errorf("Prepare = %q, want %q", got, dir)
	}
	assertDir(t, dir)
}

func TestPrepareIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	for i := 0; i < 2; i++ {
		if _, err := Prepare(dir, false); err != nil {
			t.Fatalf("Prepare call %d: %v", i, err)
		}
		assertDir(t, dir)
	}
}

func TestPrepareKeepsContents(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "CMakeCache.txt")
	if err := os.WriteFile(marker, []byte("cache"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Prepare(dir, false); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("Prepare without wipe removed contents: %v", err)
	}
}

func TestPrepareWipe(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	if err := os.MkdirAll(filepath.Join(dir, "sub", "deeper"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "f.o"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Prepare(dir, true); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	assertDir(t, dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("wiped dir has %d entries, want 0", len(entries))
	}
}

func TestPrepareWipeMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	if _, err := Prepare(dir, true); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	assertDir(t, dir)
}

func TestPrepareWipeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build")
	if err := os.WriteFile(path, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Prepare(path, true); err == nil {
		t.Fatal("Prepare over a regular file succeeded, want error")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file was removed: %v", err)
	}
	if string(data) != "not a dir" {
		t.Errorf("file contents = %q", data)
	}
}

func TestRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	if err := os.MkdirAll(filepath.Join(dir, "x"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Remove(dir); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("dir still present: %v", err)
	}
	if err := Remove(dir); err != nil {
		t.Errorf("Remove of missing dir: %v", err)
	}
}

func TestRemoveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Remove deleted a regular file: %v", err)
	}
}

func assertDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}
