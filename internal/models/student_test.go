package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStudent() Student {
	return Student{ID: 1, FirstName: "Juan", LastName: "Pérez", Age: 25, Status: StudentStatusActive}
}

func TestStudentValidateAcceptsValidStudent(t *testing.T) {
	require.NoError(t, validStudent().Validate())

	edge := validStudent()
	edge.Age = MaxStudentAge
	edge.Status = StudentStatusInactive
	assert.NoError(t, edge.Validate())

	edge.Age = 1
	assert.NoError(t, edge.Validate())
}

func TestStudentValidateRejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Student)
		reason string
	}{
		{"zero id", func(s *Student) { s.ID = 0 }, "student id must be a positive number"},
		{"negative id", func(s *Student) { s.ID = -4 }, "student id must be a positive number"},
		{"empty first name", func(s *Student) { s.FirstName = "" }, "student first name is required"},
		{"blank first name", func(s *Student) { s.FirstName = "   " }, "student first name is required"},
		{"empty last name", func(s *Student) { s.LastName = "" }, "student last name is required"},
		{"blank last name", func(s *Student) { s.LastName = "\t" }, "student last name is required"},
		{"zero age", func(s *Student) { s.Age = 0 }, "student age must be between 1 and 150"},
		{"negative age", func(s *Student) { s.Age = -1 }, "student age must be between 1 and 150"},
		{"age above limit", func(s *Student) { s.Age = 151 }, "student age must be between 1 and 150"},
		{"missing status", func(s *Student) { s.Status = "" }, "student status is required"},
		{"unknown status", func(s *Student) { s.Status = "SUSPENDED" }, "student status must be ACTIVE or INACTIVE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			student := validStudent()
			tc.mutate(&student)

			err := student.Validate()
			require.Error(t, err)
			var invalid *InvalidStudentError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.reason, invalid.Reason)
		})
	}
}

func TestStudentValidateReportsFirstViolationInFieldOrder(t *testing.T) {
	student := Student{}
	err := student.Validate()
	require.Error(t, err)
	assert.Equal(t, "student id must be a positive number", err.Error())

	student.ID = 7
	assert.Equal(t, "student first name is required", student.Validate().Error())

	student.FirstName = "Ana"
	assert.Equal(t, "student last name is required", student.Validate().Error())

	student.LastName = "Gómez"
	assert.Equal(t, "student age must be between 1 and 150", student.Validate().Error())

	student.Age = 30
	assert.Equal(t, "student status is required", student.Validate().Error())
}

func TestNormalizeStudentStatus(t *testing.T) {
	assert.Equal(t, StudentStatusActive, NormalizeStudentStatus("active"))
	assert.Equal(t, StudentStatusInactive, NormalizeStudentStatus(" Inactive "))
	assert.Equal(t, StudentStatus(""), NormalizeStudentStatus("  "))

	unknown := validStudent()
	unknown.Status = NormalizeStudentStatus("graduated")
	assert.EqualError(t, unknown.Validate(), "student status must be ACTIVE or INACTIVE")
}

func TestStudentEqualUsesIDOnly(t *testing.T) {
	a := validStudent()
	b := Student{ID: a.ID, FirstName: "Other"}
	assert.True(t, a.Equal(b))

	b.ID = 2
	assert.False(t, a.Equal(b))
}

func TestStudentIsActive(t *testing.T) {
	s := validStudent()
	assert.True(t, s.IsActive())
	s.Status = StudentStatusInactive
	assert.False(t, s.IsActive())
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 10))
	assert.Equal(t, 10, PageOffset(3, 5))
}
