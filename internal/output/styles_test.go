package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("Templates copied")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "Templates copied")
}

func TestFormatNoun(t *testing.T) {
	assert.Contains(t, FormatNoun("my_project"), "my_project")
}

func TestStyleNoun_UsesCyan(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
}
