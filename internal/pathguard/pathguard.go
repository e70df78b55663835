// Package pathguard validates user-supplied filenames and resolves them to
// absolute paths guaranteed to stay inside a configured base directory.
// Lexical checks are the fast reject; the canonical-prefix check after symlink
// resolution is the authoritative guard.
package pathguard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Sentinel errors, usable with errors.Is.
var (
	// ErrInvalidName indicates a filename that failed lexical validation:
	// empty, a parent-directory reference, a leading separator, or a
	// character outside the allowed class.
	ErrInvalidName = errors.New("pathguard: invalid filename")

	// ErrPathEscape indicates that the canonicalized path falls outside the
	// base directory, for example via a symlink crossing the boundary.
	ErrPathEscape = errors.New("pathguard: path escapes base directory")
)

// validName permits letters, digits, underscore, hyphen, dot and space.
// Path separators are excluded, so an accepted name is a single path segment.
var validName = regexp.MustCompile(`^[\w\-. ]+$`)

// CheckName performs the lexical validation half of Resolve.
// A literal "." or ".." name is rejected; ".." as a mere substring
// (e.g. "a..b.txt") is allowed because the check is segment-aware.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is a directory reference", ErrInvalidName, name)
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return fmt.Errorf("%w: %q starts with a path separator", ErrInvalidName, name)
	}
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q contains disallowed characters", ErrInvalidName, name)
	}
	return nil
}

// Resolve validates name and joins it onto base, returning an absolute path
// contained in base. It never creates or modifies anything on disk.
func Resolve(base, name string) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}

	root, err := canonicalBase(base)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, name)

	// If the target exists and is a symlink, follow it; the real location
	// must also live under the base.
	resolved, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
		if !contained(root, resolved) {
			return "", fmt.Errorf("%w: %q resolves to %q", ErrPathEscape, name, resolved)
		}
	case os.IsNotExist(err):
		// Not yet on disk; the lexical checks guarantee a single segment
		// under root, so the prefix property holds by construction.
		if !contained(root, path) {
			return "", fmt.Errorf("%w: %q", ErrPathEscape, name)
		}
	default:
		return "", fmt.Errorf("%w: cannot canonicalize %q: %v", ErrPathEscape, name, err)
	}

	return path, nil
}

// canonicalBase returns the absolute, symlink-free form of the base directory.
func canonicalBase(base string) (string, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve base %q: %v", ErrPathEscape, base, err)
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: cannot canonicalize base %q: %v", ErrPathEscape, base, err)
	}
	return canon, nil
}

// contained reports whether path is root itself or a descendant of it.
func contained(root, path string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
