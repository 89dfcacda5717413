package models

import "fmt"

// InvalidStudentError reports a violated student field constraint.
type InvalidStudentError struct {
	Reason string
}

// NewInvalidStudentError constructs an InvalidStudentError.
func NewInvalidStudentError(reason string) *InvalidStudentError {
	return &InvalidStudentError{Reason: reason}
}

func (e *InvalidStudentError) Error() string {
	return e.Reason
}

// StudentAlreadyExistsError reports an id collision on create.
type StudentAlreadyExistsError struct {
	ID int64
}

// NewStudentAlreadyExistsError constructs a StudentAlreadyExistsError.
func NewStudentAlreadyExistsError(id int64) *StudentAlreadyExistsError {
	return &StudentAlreadyExistsError{ID: id}
}

func (e *StudentAlreadyExistsError) Error() string {
	return fmt.Sprintf("a student with id %d already exists", e.ID)
}

// InvalidPaginationError reports page or size parameters out of range.
type InvalidPaginationError struct {
	Reason string
}

// NewInvalidPaginationError constructs an InvalidPaginationError.
func NewInvalidPaginationError(reason string) *InvalidPaginationError {
	return &InvalidPaginationError{Reason: reason}
}

func (e *InvalidPaginationError) Error() string {
	return e.Reason
}
