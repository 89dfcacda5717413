package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// StudentStatus enumerates the lifecycle states of a student.
type StudentStatus string

const (
	// StudentStatusActive marks a student that shows up in active listings.
	StudentStatusActive StudentStatus = "ACTIVE"
	// StudentStatusInactive marks a student excluded from active listings.
	StudentStatusInactive StudentStatus = "INACTIVE"
)

// MaxStudentAge is the inclusive upper bound accepted for a student's age.
const MaxStudentAge = 150

// NormalizeStudentStatus trims and upper-cases raw input so that status
// values are matched case-insensitively. Unknown values are left for
// Validate to reject.
func NormalizeStudentStatus(raw string) StudentStatus {
	return StudentStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// Student represents a learner registered by id. The id is assigned by the
// caller and is the only component of the student's identity.
type Student struct {
	ID        int64         `json:"id" validate:"gt=0"`
	FirstName string        `json:"first_name" validate:"notblank"`
	LastName  string        `json:"last_name" validate:"notblank"`
	Age       int           `json:"age" validate:"gt=0,lte=150"`
	Status    StudentStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

var studentValidator = newStudentValidator()

func newStudentValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate checks every field constraint and reports the first violation in
// field order: id, first name, last name, age, status.
func (s Student) Validate() error {
	err := studentValidator.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewInvalidStudentError(err.Error())
	}
	return NewInvalidStudentError(studentViolation(fieldErrs[0]))
}

func studentViolation(fe validator.FieldError) string {
	switch fe.StructField() {
	case "ID":
		return "student id must be a positive number"
	case "FirstName":
		return "student first name is required"
	case "LastName":
		return "student last name is required"
	case "Age":
		return fmt.Sprintf("student age must be between 1 and %d", MaxStudentAge)
	case "Status":
		if fe.Tag() == "required" {
			return "student status is required"
		}
		return fmt.Sprintf("student status must be %s or %s", StudentStatusActive, StudentStatusInactive)
	default:
		return fmt.Sprintf("student field %s is invalid", fe.Field())
	}
}

// IsActive reports whether the student appears in active listings.
func (s Student) IsActive() bool {
	return s.Status == StudentStatusActive
}

// Equal compares students by identity only.
func (s Student) Equal(other Student) bool {
	return s.ID == other.ID
}
