package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	plain := Conflict("This email is already registered")
	assert.Equal(t, "This email is already registered", plain.Error())

	cause := stderrors.New("connection refused")
	wrapped := Wrap(cause, ErrCodeUnavailable, "Network error: Unable to connect to the server")
	assert.Equal(t, "Network error: Unable to connect to the server: connection refused", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestUnwrapChain(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "outer")
	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(fmt.Errorf("handler: %w", err), &appErr))
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeUnauthorized, CodeOf(Unauthorized("session invalid")))
	assert.Equal(t, ErrCodeUnauthorized, CodeOf(fmt.Errorf("wrapped: %w", Unauthorized("x"))))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "no such course", MessageOf(NotFound("no such course")))
	assert.Equal(t,
		"An unexpected error occurred. Please try again.",
		MessageOf(stderrors.New("tcp dial failed")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsUnauthorized(Unauthorized("x")))
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsUnavailable(Unavailable("x")))
	assert.False(t, IsUnauthorized(NotFound("x")))
	assert.False(t, IsConflict(stderrors.New("x")))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("password", "Password is required and must be at least 6 characters long")
	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "password", err.Field)
}
