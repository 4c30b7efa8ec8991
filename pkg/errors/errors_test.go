package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "cart not found")))
	assert.Equal(t, CodeValidation, CodeOf(Newf(CodeValidation, "quantity must be at least %d", 1)))
	assert.Equal(t, CodeInternal, CodeOf(fmt.Errorf("plain error")))
	assert.Equal(t, CodeInternal, CodeOf(nil))
}

func TestCodeOfWrapped(t *testing.T) {
	cause := New(CodeBadInput, "profile does not exist")
	err := fmt.Errorf("create user: %w", cause)

	assert.Equal(t, CodeBadInput, CodeOf(err))
	assert.True(t, IsBadInput(err))
	assert.False(t, IsNotFound(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(CodeInternal, cause, "find profile")

	require.EqualError(t, err, "find profile: connection reset")
	assert.Equal(t, cause, err.Unwrap())
}

func TestExtensions(t *testing.T) {
	err := New(CodeValidation, "validation failed").
		WithFields(map[string]string{"email": "must be a valid email"})

	ext := err.Extensions()
	assert.Equal(t, "VALIDATION_ERROR", ext["code"])
	assert.Equal(t, map[string]string{"email": "must be a valid email"}, ext["fields"])
}
