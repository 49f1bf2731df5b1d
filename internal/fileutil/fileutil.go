// Package fileutil provides the filesystem primitives the provisioning steps
// are built from. Every helper is idempotent so repeated installs converge on
// the same on-disk state.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// WriteFileMode writes data to path, truncating any existing file, and forces
// the exact permission bits afterwards. os.OpenFile alone is not enough
// because the process umask masks the create mode.
func WriteFileMode(path string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}

// Equal reports whether the file at path exists with exactly the given
// content. A missing file is not an error; it simply compares unequal.
func Equal(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %q: %w", path, err)
	}
	return bytes.Equal(existing, data), nil
}

// EnsureFile creates an empty file with the given mode when nothing exists at
// path. An existing file is left byte-for-byte untouched, including its
// permissions, and created=false is returned.
func EnsureFile(path string, mode os.FileMode) (created bool, err error) {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	if err := out.Close(); err != nil {
		return false, err
	}
	return true, os.Chmod(path, mode)
}

// EnsureMode repairs the permission bits of path when they drifted from mode.
// It reports whether a chmod was needed.
func EnsureMode(path string, mode os.FileMode) (changed bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.Mode().Perm() == mode.Perm() {
		return false, nil
	}
	return true, os.Chmod(path, mode)
}

// RemoveFile deletes path, reporting whether anything was there to delete.
func RemoveFile(path string) (removed bool, err error) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
