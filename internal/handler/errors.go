package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
)

// translateError maps domain errors onto their transport representation.
// Anything not recognised becomes an internal error.
func translateError(err error) *appErrors.Error {
	var (
		invalidStudent    *models.InvalidStudentError
		alreadyExists     *models.StudentAlreadyExistsError
		invalidPagination *models.InvalidPaginationError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &invalidStudent):
		return appErrors.WrapKind(err, appErrors.ErrInvalidStudent, invalidStudent.Reason)
	case errors.As(err, &alreadyExists):
		return appErrors.WrapKind(err, appErrors.ErrStudentAlreadyExists, alreadyExists.Error())
	case errors.As(err, &invalidPagination):
		return appErrors.WrapKind(err, appErrors.ErrInvalidPagination, invalidPagination.Reason)
	default:
		return appErrors.FromError(err)
	}
}

// bindError describes why a request body could not be decoded.
func bindError(err error) *appErrors.Error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return appErrors.WrapKind(err, appErrors.ErrInvalidPayload, "request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return appErrors.WrapKind(err, appErrors.ErrInvalidPayload, "request body is not valid JSON")
	case errors.As(err, &typeErr):
		return appErrors.WrapKind(err, appErrors.ErrInvalidPayload, "request body does not match the expected format")
	default:
		return appErrors.WrapKind(err, appErrors.ErrInvalidPayload, "")
	}
}
