package scaffold

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/buildben/cli/internal/output"
)

// SubstituteText replaces every literal occurrence of each token in p, in
// map order. Each token is applied once over the result of the previous
// ones, so a later token may match text an earlier replacement introduced;
// a replacement is never rescanned for its own token.
func SubstituteText(text string, p *PlaceholderMap) string {
	for _, pair := range p.Pairs() {
		if pair.Key == "" {
			continue
		}
		text = strings.ReplaceAll(text, pair.Key, pair.Value)
	}
	return text
}

// Substitute rewrites each file in place with SubstituteText. Files must be
// UTF-8 text; permission bits are preserved.
func Substitute(files []string, p *PlaceholderMap) error {
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("substituting %s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			return &EncodingError{Path: path}
		}

		text := SubstituteText(string(data), p)
		if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	output.Debug("placeholders substituted", "files", len(files), "tokens", p.Keys())
	return nil
}
