package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okanck/studentapi/internal/app/models"
	"github.com/okanck/studentapi/internal/db"
)

// Student repository error types
var (
	ErrStudentNotFound = errors.New("student not found")
)

// IStudentRepository defines the data access contract for students
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	ExistsByNameAndAge(ctx context.Context, name string, age int) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
	}
}

// Create inserts a new student and, in the same transaction, one enrollment
// row per attached course. The course rows themselves must already exist.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO students (name, age)
			VALUES ($1, $2)
			RETURNING id
		`

		if err := tx.QueryRow(ctx, query, student.Name, student.Age).Scan(&student.ID); err != nil {
			return fmt.Errorf("error inserting student: %w", err)
		}

		for _, course := range student.Courses {
			_, err := tx.Exec(ctx, `
				INSERT INTO course_students (student_id, course_id)
				VALUES ($1, $2)
				ON CONFLICT (student_id, course_id) DO NOTHING`,
				student.ID, course.ID)
			if err != nil {
				return fmt.Errorf("error enrolling student in course %d: %w", course.ID, err)
			}
		}

		return nil
	})
}

// GetByID retrieves a student by ID with courses eagerly loaded
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, age
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	courses, err := r.coursesByStudentIDs(ctx, []int64{student.ID})
	if err != nil {
		return nil, err
	}
	student.Courses = courses[student.ID]

	return &student, nil
}

// GetAll retrieves all students with their courses eagerly loaded
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, age
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Age,
		); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, &student)
		ids = append(ids, student.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(students) == 0 {
		return students, nil
	}

	courses, err := r.coursesByStudentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, student := range students {
		student.Courses = courses[student.ID]
	}

	return students, nil
}

// coursesByStudentIDs loads the enrolled courses for a set of students in a
// single join query, keyed by student ID. Students without enrollments get an
// empty slice so the JSON rendering is a [] rather than null.
func (r *StudentRepository) coursesByStudentIDs(ctx context.Context, studentIDs []int64) (map[int64][]models.Course, error) {
	query := `
		SELECT cs.student_id, c.id, c.title
		FROM course_students cs
		JOIN courses c ON c.id = cs.course_id
		WHERE cs.student_id = ANY($1)
		ORDER BY c.id
	`

	rows, err := r.db.Pool.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]models.Course, len(studentIDs))
	for _, id := range studentIDs {
		result[id] = make([]models.Course, 0)
	}

	for rows.Next() {
		var studentID int64
		var course models.Course
		if err := rows.Scan(&studentID, &course.ID, &course.Title); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		result[studentID] = append(result[studentID], course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ExistsByNameAndAge checks if a student with identical name and age exists
func (r *StudentRepository) ExistsByNameAndAge(ctx context.Context, name string, age int) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE name = $1 AND age = $2)`,
		name, age).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Update overwrites name and age of an existing student. Course enrollment
// is never touched here.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, age = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query, student.Name, student.Age, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete removes a student. Enrollment rows cascade in the store.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
