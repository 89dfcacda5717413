package service

import (
	"context"
	"fmt"

	"github.com/noah-isme/students-api/internal/models"
)

// StudentRepository is the persistence port consumed by StudentService.
type StudentRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, student models.Student) error
	FindActivePaginated(ctx context.Context, page, size int) ([]models.Student, error)
}

// StudentService handles student use-cases.
type StudentService struct {
	repo StudentRepository
}

// NewStudentService constructs the student service.
func NewStudentService(repo StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

// Create validates the candidate, rejects duplicate ids and persists it.
// The existence check and the insert are separate calls; the repository's
// primary-key constraint is what guarantees uniqueness under concurrency.
// Repository errors are returned unchanged.
func (s *StudentService) Create(ctx context.Context, candidate models.Student) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByID(ctx, candidate.ID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewStudentAlreadyExistsError(candidate.ID)
	}
	return s.repo.Save(ctx, candidate)
}

// ListActive returns one page of active students ordered by ascending id.
// A page whose offset cannot be represented is empty.
func (s *StudentService) ListActive(ctx context.Context, page, size int) ([]models.Student, error) {
	if page < models.DefaultPage {
		return nil, models.NewInvalidPaginationError("page must be greater than or equal to 1")
	}
	if size <= 0 || size > models.MaxPageSize {
		return nil, models.NewInvalidPaginationError(fmt.Sprintf("page size must be between 1 and %d", models.MaxPageSize))
	}
	if models.OffsetOverflows(page, size) {
		return []models.Student{}, nil
	}
	return s.repo.FindActivePaginated(ctx, page, size)
}
