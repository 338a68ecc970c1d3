package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/buildben/cli/internal/output"
)

// CopyTemplates copies every template named in transfers from root to its
// destination, in map order. Content, permission bits and modification time
// of the template are carried over. Destination parents must already exist.
//
// The first missing template aborts the copy; files copied before it stay
// in place.
func CopyTemplates(transfers *TransferMap, root fs.FS) error {
	for _, t := range transfers.Pairs() {
		if err := copyTemplate(root, t.Key, t.Value); err != nil {
			return err
		}
	}
	output.Debug("templates copied", "count", transfers.Len())
	return nil
}

func copyTemplate(root fs.FS, id, dst string) error {
	info, err := fs.Stat(root, id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return &TemplateNotFoundError{Identifier: id}
		}
		return fmt.Errorf("reading template %s: %w", id, err)
	}
	if !info.Mode().IsRegular() {
		return &TemplateNotFoundError{Identifier: id, Cause: errors.New("not a regular file")}
	}

	data, err := fs.ReadFile(root, id)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", id, err)
	}

	// Never write through a link at the destination.
	if li, err := os.Lstat(dst); err == nil && li.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("replacing symlink %s: %w", dst, err)
		}
	}

	perm := info.Mode().Perm()
	if err := os.WriteFile(dst, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	// WriteFile only applies perm on creation and is subject to the umask.
	if err := os.Chmod(dst, perm); err != nil {
		return fmt.Errorf("setting mode on %s: %w", dst, err)
	}
	if mt := info.ModTime(); !mt.IsZero() {
		if err := os.Chtimes(dst, mt, mt); err != nil {
			return fmt.Errorf("setting times on %s: %w", dst, err)
		}
	}

	output.Debug("copied template", "template", id, "destination", dst)
	return nil
}
