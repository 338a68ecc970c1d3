package scaffold

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/buildben/cli/internal/errors"
)

type recordingConfirmer struct {
	answer  bool
	prompts []string
}

func (r *recordingConfirmer) Confirm(prompt string) (bool, error) {
	r.prompts = append(r.prompts, prompt)
	return r.answer, nil
}

func TestConfirmOrAbort_AbsentTargetNeverPrompts(t *testing.T) {
	c := &recordingConfirmer{}

	err := ConfirmOrAbort(filepath.Join(t.TempDir(), "new-project"), c)
	require.NoError(t, err)
	assert.Empty(t, c.prompts)
}

func TestConfirmOrAbort_ExistingTarget(t *testing.T) {
	target := t.TempDir()

	t.Run("accepted", func(t *testing.T) {
		c := &recordingConfirmer{answer: true}
		require.NoError(t, ConfirmOrAbort(target, c))
		require.Len(t, c.prompts, 1)
		assert.Contains(t, c.prompts[0], target)
	})

	t.Run("declined", func(t *testing.T) {
		err := ConfirmOrAbort(target, AutoConfirm{Answer: false})

		var abort *UserAbortError
		require.True(t, errors.As(err, &abort))
		assert.Equal(t, target, abort.Target)
		assert.True(t, errors.Is(err, oerrors.ErrAborted))
		assert.True(t, strings.HasPrefix(err.Error(), "Aborted by user"))
	})
}

func TestConfirmOrAbort_ExistingFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(target, nil, 0o644))

	assert.Error(t, ConfirmOrAbort(target, AutoConfirm{}))
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"  YES  \n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"yess\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			p := &PromptConfirmer{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.Confirm("Continue? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Continue? ", out.String())
		})
	}
}
