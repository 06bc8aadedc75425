package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okanck/studentapi/internal/app/models"
	"github.com/okanck/studentapi/internal/db"
	"github.com/okanck/studentapi/internal/pkg/dberrors"
)

// Course repository error types
var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseHasStudents    = errors.New("course has enrolled students")
	ErrDuplicateCourseTitle = errors.New("course title already exists")
)

// ICourseRepository defines the data access contract for courses
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	DeleteWithEnrollments(ctx context.Context, id int64) error
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{
		db: database,
	}
}

// Create inserts a new course. Titles carry a unique constraint, so a racing
// duplicate that slips past the service-level existence check still fails here.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title)
		VALUES ($1)
		RETURNING id
	`

	if err := r.db.Pool.QueryRow(ctx, query, course.Title).Scan(&course.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrDuplicateCourseTitle
		}
		return fmt.Errorf("error inserting course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its enrolled students
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, title
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&course.ID, &course.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT s.id, s.name, s.age
		FROM course_students cs
		JOIN students s ON s.id = cs.student_id
		WHERE cs.course_id = $1
		ORDER BY s.id`, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled students: %w", err)
	}
	defer rows.Close()

	course.Students = make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Age); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		course.Students = append(course.Students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &course, nil
}

// GetAll retrieves all courses without their student lists
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, title
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ExistsByTitle checks if a course with the given title exists
func (r *CourseRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE title = $1)`,
		title).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// DeleteWithEnrollments removes a course and its enrollment rows in a single
// transaction. The store does not cascade deletes from the course side, so the
// enrollment rows are cleared first; any failure rolls both statements back.
func (r *CourseRepository) DeleteWithEnrollments(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM course_students WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error removing course enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return ErrCourseHasStudents
			}
			return fmt.Errorf("error deleting course: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrCourseNotFound
		}

		return nil
	})
}
