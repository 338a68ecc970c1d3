package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner executes action while showing a spinner titled title.
// Without a TTY the action runs directly. The action's error is returned.
func RunWithSpinner(ctx context.Context, title string, action func(ctx context.Context) error) error {
	if !IsTTY() {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			actionErr = action(ctx)
		}).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
