// Package fsutil holds small filesystem helpers shared by the generators.
package fsutil

import (
	"os"
	"path/filepath"
)

const tmpPattern = ".buildben-tmp-*"

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename. On failure the original file, if any, is
// left as it was. The parent directory must exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// Touch creates path as an empty file when it does not exist. An existing
// file is left untouched, content and timestamps included.
func Touch(path string, perm os.FileMode) error {
	if _, err := os.Lstat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	return f.Close()
}
