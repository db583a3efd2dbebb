package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDestructive_NonInteractive(t *testing.T) {
	// Under go test stdin is not a terminal, so the prompt must refuse
	// rather than block waiting for input.
	require.False(t, IsInteractive())

	confirmed, err := ConfirmDestructive("Delete blog 42?")
	require.Error(t, err)
	assert.False(t, confirmed)
	assert.Contains(t, err.Error(), "non-interactive")
	assert.Contains(t, err.Error(), "--yes")
}
