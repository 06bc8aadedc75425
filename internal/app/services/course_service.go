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

// Course field bounds enforced before hitting the store.
const (
	CourseTitleMaxLength = 200
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course is required")
	}

	if strings.TrimSpace(course.Title) == "" {
		return apperrors.NewValidationError("title is required")
	}

	if utf8.RuneCountInString(course.Title) > CourseTitleMaxLength {
		return apperrors.NewValidationError(fmt.Sprintf("title must be at most %d characters", CourseTitleMaxLength))
	}

	return nil
}

// CreateCourse creates a new course, rejecting duplicate titles
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	exists, err := s.courseRepo.ExistsByTitle(ctx, course.Title)
	if err != nil {
		return fmt.Errorf("error checking for duplicate course: %w", err)
	}

	if exists {
		return apperrors.ErrCourseAlreadyExists
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		// A concurrent create can slip past the existence check; the unique
		// constraint on the title catches it.
		if errors.Is(err, repositories.ErrDuplicateCourseTitle) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course by ID with its enrolled students
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("course ID must be positive")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// DeleteCourse removes a course. The store does not cascade deletes from the
// course side of the enrollment relation, so the repository resolves the
// enrollment rows and deletes the course in one transaction; a failed delete
// leaves the enrollments in place.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("course ID must be positive")
	}

	if err := s.courseRepo.DeleteWithEnrollments(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseNotFound):
			return apperrors.ErrCourseNotFound
		case errors.Is(err, repositories.ErrCourseHasStudents):
			return apperrors.ErrCourseHasStudents
		default:
			return fmt.Errorf("error deleting course: %w", err)
		}
	}

	return nil
}
