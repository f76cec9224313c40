package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError_WrapsCause(t *testing.T) {
	err := NewUserError("could not read batch file", ErrBadBatchFile)

	assert.Equal(t, "could not read batch file: malformed message batch file", err.Error())
	require.ErrorIs(t, err, ErrBadBatchFile)

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "could not read batch file", userErr.UserMessage)
}

func TestUserError_WithoutCause(t *testing.T) {
	err := NewUserError("nothing to scan", nil)
	assert.Equal(t, "nothing to scan", err.Error())
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("line 3: %w", ErrEmptyMessage)
	assert.ErrorIs(t, wrapped, ErrEmptyMessage)
}
