package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	// Confirm returns true only for an affirmative answer.
	Confirm(prompt string) (bool, error)
}

// AutoConfirm answers every prompt with Answer without blocking.
// It is used for --yes and in tests.
type AutoConfirm struct {
	Answer bool
}

// Confirm implements Confirmer.
func (a AutoConfirm) Confirm(string) (bool, error) {
	return a.Answer, nil
}

// PromptConfirmer writes the prompt to Out and reads a single line from In.
// End of input counts as a refusal, so a closed stdin never blocks.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (p *PromptConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := io.WriteString(p.Out, prompt); err != nil {
		return false, fmt.Errorf("writing prompt: %w", err)
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	return IsAffirmative(line), nil
}

// IsAffirmative reports whether answer is "y" or "yes", ignoring case and
// surrounding whitespace.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ConfirmOrAbort returns nil if target does not exist. If it exists the
// operator is asked whether to continue, and anything but an affirmative
// answer yields a *UserAbortError.
func ConfirmOrAbort(target string, c Confirmer) error {
	if _, err := os.Lstat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", target, err)
	}

	ok, err := c.Confirm(fmt.Sprintf("⚠️  %s exists and files may be overwritten. Continue? [y/N] ", target))
	if err != nil {
		return err
	}
	if !ok {
		return &UserAbortError{Target: target}
	}
	return nil
}
