package scaffold

import (
	"fmt"
	"os"
)

// EnsureDirectories creates each path and its missing parents, in order.
// Existing directories are left untouched. The first other failure stops
// the remaining creations.
func EnsureDirectories(paths []string) error {
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", p, err)
		}
	}
	return nil
}
