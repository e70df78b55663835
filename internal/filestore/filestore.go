// Package filestore exposes flat text-file operations confined to one base
// directory. Every operation takes the raw user-supplied filename and resolves
// it through pathguard before any I/O, so unvalidated names never reach the
// filesystem.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/almegatsro/filedeck/internal/pathguard"
)

// Sentinel errors, usable with errors.Is. Validation failures come from
// pathguard (ErrInvalidName, ErrPathEscape); these cover the storage side.
var (
	// ErrNotFound indicates an operation that requires an existing file.
	ErrNotFound = errors.New("filestore: file not found")

	// ErrExists indicates a create on a pre-existing file.
	ErrExists = errors.New("filestore: file already exists")

	// ErrIO wraps any other failure from the underlying storage
	// (permissions, disk full, hardware). Never retried.
	ErrIO = errors.New("filestore: storage failure")
)

// Store manages text files directly under a single base directory.
// No subdirectories are created or traversed.
type Store struct {
	base string
}

// New creates a Store rooted at dir, expanding a leading ~ and creating the
// directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrIO)
	}
	if dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot expand home directory: %w", ErrIO, err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve %s: %w", ErrIO, dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: cannot create directory %s: %w", ErrIO, abs, err)
	}

	return &Store{base: abs}, nil
}

// Base returns the absolute base directory all operations are confined to.
func (s *Store) Base() string {
	return s.base
}

// resolve is the single call boundary between raw names and the filesystem.
func (s *Store) resolve(name string) (string, error) {
	return pathguard.Resolve(s.base, name)
}

// List enumerates the regular files directly under the base directory,
// sorted by name. Directories and other entry kinds are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %w", ErrIO, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Create makes an empty file. It never truncates: an existing file is
// reported as ErrExists.
func (s *Store) Create(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return fmt.Errorf("%w: cannot create %s: %w", ErrIO, name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cannot create %s: %w", ErrIO, name, err)
	}
	return nil
}

// Read returns the full content of an existing file as UTF-8 text.
func (s *Store) Read(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("%w: cannot read %s: %w", ErrIO, name, err)
	}
	return string(data), nil
}

// Overwrite replaces the entire content, creating the file if absent.
// Gating on prior existence is the caller's choice, not enforced here.
func (s *Store) Overwrite(name, content string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: cannot write %s: %w", ErrIO, name, err)
	}
	return nil
}

// Append writes each line followed by a newline at the end of the file,
// creating it if absent. Existence gating, when wanted, happens in the
// caller via Exists.
func (s *Store) Append(name string, lines []string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: cannot open %s for append: %w", ErrIO, name, err)
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("%w: cannot append to %s: %w", ErrIO, name, err)
		}
	}
	return nil
}

// Truncate empties an existing file. A missing file is ErrNotFound and
// nothing is created.
func (s *Store) Truncate(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("%w: cannot stat %s: %w", ErrIO, name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrIO, name)
	}

	if err := os.Truncate(path, 0); err != nil {
		return fmt.Errorf("%w: cannot truncate %s: %w", ErrIO, name, err)
	}
	return nil
}

// Delete removes the file permanently.
func (s *Store) Delete(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("%w: cannot delete %s: %w", ErrIO, name, err)
	}
	return nil
}

// Exists reports whether the named file is present. Used by callers that
// gate Append or Overwrite on prior existence.
func (s *Store) Exists(name string) (bool, error) {
	path, err := s.resolve(name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: cannot stat %s: %w", ErrIO, name, err)
}
