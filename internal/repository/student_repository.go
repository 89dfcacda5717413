package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/students-api/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

// QueryObserver receives the duration of each executed query.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// studentRecord is the row shape of the students table.
type studentRecord struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Status    string `db:"status"`
	Age       int    `db:"age"`
}

func newStudentRecord(student models.Student) studentRecord {
	return studentRecord{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Status:    string(student.Status),
		Age:       student.Age,
	}
}

func (r studentRecord) toModel() models.Student {
	return models.Student{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Status:    models.StudentStatus(r.Status),
		Age:       r.Age,
	}
}

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewStudentRepository constructs a StudentRepository. observer may be nil.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{db: db, observer: observer}
}

// ExistsByID reports whether a student with the given id is stored.
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	defer r.observe("students.exists_by_id", time.Now())

	const query = `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check student id: %w", err)
	}
	return exists, nil
}

// Save inserts a new student row. A primary-key collision is reported as
// *models.StudentAlreadyExistsError since the existence check in the service
// is not atomic with the insert.
func (r *StudentRepository) Save(ctx context.Context, student models.Student) error {
	defer r.observe("students.save", time.Now())

	const query = `INSERT INTO students (id, first_name, last_name, status, age)
        VALUES (:id, :first_name, :last_name, :status, :age)`
	if _, err := r.db.NamedExecContext(ctx, query, newStudentRecord(student)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.NewStudentAlreadyExistsError(student.ID)
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// FindActivePaginated returns one page of active students ordered by id.
// page is 1-based; callers are expected to have validated page and size.
func (r *StudentRepository) FindActivePaginated(ctx context.Context, page, size int) ([]models.Student, error) {
	defer r.observe("students.find_active", time.Now())

	const query = `SELECT id, first_name, last_name, status, age FROM students
        WHERE status = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
	var records []studentRecord
	if err := r.db.SelectContext(ctx, &records, query, string(models.StudentStatusActive), size, models.PageOffset(page, size)); err != nil {
		return nil, fmt.Errorf("list active students: %w", err)
	}

	students := make([]models.Student, 0, len(records))
	for _, record := range records {
		students = append(students, record.toModel())
	}
	return students, nil
}

// Ping verifies the database is reachable.
func (r *StudentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *StudentRepository) observe(label string, start time.Time) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveDBQuery(label, time.Since(start))
}
