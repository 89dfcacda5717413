package dto

import (
	"strings"

	"github.com/noah-isme/students-api/internal/models"
)

// CreateStudentRequest is the JSON payload accepted when creating a student.
type CreateStudentRequest struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Juan"`
	LastName  string `json:"last_name" example:"Pérez"`
	Status    string `json:"status" example:"ACTIVE" enums:"ACTIVE,INACTIVE"`
	Age       int    `json:"age" example:"20"`
}

// ToModel maps the payload onto a Student. Constraints are not checked here;
// that is left to Student.Validate.
func (r CreateStudentRequest) ToModel() models.Student {
	return models.Student{
		ID:        r.ID,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Status:    models.NormalizeStudentStatus(r.Status),
		Age:       r.Age,
	}
}

// StudentResponse is the JSON representation of a student.
type StudentResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
	Age       int    `json:"age"`
}

// NewStudentResponse converts a Student into its response shape.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Status:    string(student.Status),
		Age:       student.Age,
	}
}

// NewStudentResponses converts a page of students, never returning nil.
func NewStudentResponses(students []models.Student) []StudentResponse {
	items := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, NewStudentResponse(student))
	}
	return items
}
