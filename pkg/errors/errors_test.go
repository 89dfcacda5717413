package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	typed := ErrStudentAlreadyExists.WithMessage("a student with id 1 already exists")
	wrapped := fmt.Errorf("handler: %w", typed)

	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, "STUDENT_ALREADY_EXISTS", got.Code)
	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, "a student with id 1 already exists", got.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection refused")

	got := FromError(cause)
	require.NotNil(t, got)
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
	assert.Equal(t, "internal server error: connection refused", got.Error())

	assert.Nil(t, FromError(nil))
}

func TestWithMessageDoesNotMutateKind(t *testing.T) {
	custom := ErrInvalidPagination.WithMessage("page must be greater than or equal to 1")
	assert.Equal(t, "invalid pagination parameters", ErrInvalidPagination.Message)
	assert.Equal(t, "page must be greater than or equal to 1", custom.Message)
	assert.Equal(t, ErrInvalidPagination.Code, custom.Code)

	var nilKind *Error
	assert.Nil(t, nilKind.WithMessage("ignored"))
	assert.Equal(t, ErrInvalidPayload.Message, ErrInvalidPayload.WithMessage("").Message)
}

func TestWrapKind(t *testing.T) {
	cause := errors.New("unexpected EOF")

	got := WrapKind(cause, ErrInvalidPayload, "request body is not valid JSON")
	assert.Equal(t, "INVALID_PAYLOAD", got.Code)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "request body is not valid JSON", got.Message)
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, ErrInvalidPayload.Err)

	fallback := WrapKind(cause, ErrUnavailable, "")
	assert.Equal(t, ErrUnavailable.Message, fallback.Message)
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("route: %w", ErrNotFound.WithMessage("route not found"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInternal)
}
