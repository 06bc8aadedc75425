package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/okanck/studentapi/internal/app/models"
	"github.com/okanck/studentapi/internal/app/repositories"
	"github.com/okanck/studentapi/internal/pkg/apperrors"
)

// Student field bounds enforced before hitting the store.
const (
	StudentNameMaxLength = 100
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is required")
	}

	if strings.TrimSpace(student.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}

	if utf8.RuneCountInString(student.Name) > StudentNameMaxLength {
		return apperrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", StudentNameMaxLength))
	}

	if student.Age < 0 {
		return apperrors.NewValidationError("age must be non-negative")
	}

	return nil
}

// CreateStudent creates a new student, rejecting duplicates.
// The duplicate check and the insert are separate statements; two concurrent
// creates with an identical (name, age) pair can both pass the check.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	exists, err := s.studentRepo.ExistsByNameAndAge(ctx, student.Name, student.Age)
	if err != nil {
		return fmt.Errorf("error checking for duplicate student: %w", err)
	}

	if exists {
		return apperrors.ErrStudentAlreadyExists
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByID retrieves a student by ID with enrolled courses
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves all students with enrolled courses
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// UpdateStudent overwrites name and age of an existing student. Any course
// list on the payload is deliberately ignored; enrollment changes are out of
// scope for this operation.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	if student.ID <= 0 {
		return apperrors.NewValidationError("student ID must be positive")
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// DeleteStudent removes a student. Enrollment rows cascade in the store, so
// no client-side resolution is needed on this side of the relationship.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("student ID must be positive")
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}
