package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/almegatsro/filedeck/internal/pathguard"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "files")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	info, err := os.Stat(s.Base())
	if err != nil || !info.IsDir() {
		t.Errorf("base directory was not created: %v", err)
	}
}

func TestCreateThenReadEmpty(t *testing.T) {
	s := newStore(t)

	if err := s.Create("notes.txt"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	content, err := s.Read("notes.txt")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if content != "" {
		t.Errorf("new file should be empty, got %q", content)
	}
}

func TestCreateExisting(t *testing.T) {
	s := newStore(t)

	if err := s.Create("notes.txt"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	err := s.Create("notes.txt")
	if !errors.Is(err, ErrExists) {
		t.Errorf("second Create() = %v, expected ErrExists", err)
	}

	// The existing file must not have been truncated.
	if err := s.Overwrite("notes.txt", "kept"); err != nil {
		t.Fatalf("Overwrite() failed: %v", err)
	}
	if err := s.Create("notes.txt"); !errors.Is(err, ErrExists) {
		t.Fatalf("Create() on non-empty = %v, expected ErrExists", err)
	}
	content, _ := s.Read("notes.txt")
	if content != "kept" {
		t.Errorf("Create() on existing file must not truncate, got %q", content)
	}
}

func TestCreateFailureWrapsErrIO(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "files")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Pull the base directory out from under the store so the OS call fails.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll() failed: %v", err)
	}

	err = s.Create("notes.txt")
	if !errors.Is(err, ErrIO) {
		t.Errorf("Create() on a missing base should wrap ErrIO, got %v", err)
	}
	if errors.Is(err, ErrExists) {
		t.Errorf("Create() failure misclassified as ErrExists: %v", err)
	}
}

func TestOverwriteThenRead(t *testing.T) {
	s := newStore(t)

	if err := s.Overwrite("a.txt", "X"); err != nil {
		t.Fatalf("Overwrite() failed: %v", err)
	}

	content, err := s.Read("a.txt")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if content != "X" {
		t.Errorf("Read() = %q, expected %q", content, "X")
	}

	// Overwrite replaces, never appends
	if err := s.Overwrite("a.txt", "Y"); err != nil {
		t.Fatalf("Overwrite() failed: %v", err)
	}
	content, _ = s.Read("a.txt")
	if content != "Y" {
		t.Errorf("Read() after second Overwrite = %q, expected %q", content, "Y")
	}
}

func TestAppendLines(t *testing.T) {
	s := newStore(t)

	if err := s.Overwrite("log.txt", ""); err != nil {
		t.Fatalf("Overwrite() failed: %v", err)
	}
	if err := s.Append("log.txt", []string{"a", "b"}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	content, err := s.Read("log.txt")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if content != "a\nb\n" {
		t.Errorf("Read() = %q, expected %q", content, "a\nb\n")
	}
}

func TestAppendCreatesMissingFile(t *testing.T) {
	s := newStore(t)

	// The primitive is append-or-create; the create-confirmation gate
	// lives in the caller.
	if err := s.Append("fresh.txt", []string{"first"}); err != nil {
		t.Fatalf("Append() on missing file failed: %v", err)
	}

	content, err := s.Read("fresh.txt")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if content != "first\n" {
		t.Errorf("Read() = %q, expected %q", content, "first\n")
	}
}

func TestTruncate(t *testing.T) {
	s := newStore(t)

	if err := s.Overwrite("full.txt", "lots of content"); err != nil {
		t.Fatalf("Overwrite() failed: %v", err)
	}
	if err := s.Truncate("full.txt"); err != nil {
		t.Fatalf("Truncate() failed: %v", err)
	}

	content, err := s.Read("full.txt")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if content != "" {
		t.Errorf("Read() after Truncate = %q, expected empty", content)
	}
}

func TestTruncateMissing(t *testing.T) {
	s := newStore(t)

	err := s.Truncate("ghost.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Truncate() on missing file = %v, expected ErrNotFound", err)
	}

	// Truncate must not create the file as a side effect.
	exists, err := s.Exists("ghost.txt")
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if exists {
		t.Error("Truncate() on a missing file must not create it")
	}
}

func TestDeleteThenRead(t *testing.T) {
	s := newStore(t)

	if err := s.Overwrite("doomed.txt", "bye"); err != nil {
		t.Fatalf("Overwrite() failed: %v", err)
	}
	if err := s.Delete("doomed.txt"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	_, err := s.Read("doomed.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Read() after Delete = %v, expected ErrNotFound", err)
	}

	if err := s.Delete("doomed.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() = %v, expected ErrNotFound", err)
	}
}

func TestListRegularFilesOnly(t *testing.T) {
	s := newStore(t)

	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		if err := s.Create(name); err != nil {
			t.Fatalf("Create(%q) failed: %v", name, err)
		}
	}

	// Subdirectories are not part of the managed surface.
	if err := os.Mkdir(filepath.Join(s.Base(), "subdir"), 0o755); err != nil {
		t.Fatalf("cannot create subdir: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, expected %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, names[i], want[i])
		}
	}
}

func TestOperationsRejectBadNames(t *testing.T) {
	s := newStore(t)

	bad := []string{"", "..", "../up.txt", "/abs.txt", "semi;colon"}
	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			if err := s.Create(name); !errors.Is(err, pathguard.ErrInvalidName) {
				t.Errorf("Create(%q) = %v, expected ErrInvalidName", name, err)
			}
			if _, err := s.Read(name); !errors.Is(err, pathguard.ErrInvalidName) {
				t.Errorf("Read(%q) = %v, expected ErrInvalidName", name, err)
			}
			if err := s.Delete(name); !errors.Is(err, pathguard.ErrInvalidName) {
				t.Errorf("Delete(%q) = %v, expected ErrInvalidName", name, err)
			}
		})
	}

	// Nothing should have been created by the rejected calls.
	names, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("rejected names must not touch the filesystem, found %v", names)
	}
}

func TestExists(t *testing.T) {
	s := newStore(t)

	exists, err := s.Exists("maybe.txt")
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if exists {
		t.Error("Exists() on missing file should be false")
	}

	if err := s.Create("maybe.txt"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	exists, err = s.Exists("maybe.txt")
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if !exists {
		t.Error("Exists() on created file should be true")
	}
}
