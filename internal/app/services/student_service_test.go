package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanck/studentapi/internal/app/models"
	"github.com/okanck/studentapi/internal/app/repositories"
	"github.com/okanck/studentapi/internal/pkg/apperrors"
)

// fakeStudentRepo is an in-memory stand-in for the student repository
type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
	failWith error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students: make(map[int64]*models.Student),
		nextID:   1,
	}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if r.failWith != nil {
		return r.failWith
	}
	student.ID = r.nextID
	r.nextID++
	clone := *student
	clone.Courses = append([]models.Course(nil), student.Courses...)
	r.students[clone.ID] = &clone
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	student, ok := r.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	clone := *student
	clone.Courses = append([]models.Course{}, student.Courses...)
	return &clone, nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]*models.Student, 0, len(r.students))
	for _, student := range r.students {
		clone := *student
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeStudentRepo) ExistsByNameAndAge(_ context.Context, name string, age int) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, student := range r.students {
		if student.Name == name && student.Age == age {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if r.failWith != nil {
		return r.failWith
	}
	existing, ok := r.students[student.ID]
	if !ok {
		return repositories.ErrStudentNotFound
	}
	existing.Name = student.Name
	existing.Age = student.Age
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

func TestCreateStudentThenGetByID(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)
	ctx := context.Background()

	student := &models.Student{Name: "Alice", Age: 20}
	require.NoError(t, service.CreateStudent(ctx, student))
	require.NotZero(t, student.ID, "create should assign an identity")

	got, err := service.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, 20, got.Age)
}

func TestCreateStudentRejectsDuplicate(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)
	ctx := context.Background()

	require.NoError(t, service.CreateStudent(ctx, &models.Student{Name: "Alice", Age: 20}))

	err := service.CreateStudent(ctx, &models.Student{Name: "Alice", Age: 20})
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
	assert.Len(t, repo.students, 1, "duplicate must not increase the student count")

	// Same name with different age is a different student
	require.NoError(t, service.CreateStudent(ctx, &models.Student{Name: "Alice", Age: 21}))
	assert.Len(t, repo.students, 2)
}

func TestCreateStudentValidation(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)
	ctx := context.Background()

	longName := make([]byte, StudentNameMaxLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		student *models.Student
	}{
		{name: "nil student", student: nil},
		{name: "blank name", student: &models.Student{Name: "   ", Age: 20}},
		{name: "empty name", student: &models.Student{Name: "", Age: 20}},
		{name: "name too long", student: &models.Student{Name: string(longName), Age: 20}},
		{name: "negative age", student: &models.Student{Name: "Alice", Age: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateStudent(ctx, tt.student)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	assert.Empty(t, repo.students, "no invalid student may reach the store")
}

func TestCreateStudentNameBoundCountsCharacters(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)
	ctx := context.Background()

	// 60 characters but 120 bytes; the bound counts characters
	accented := strings.Repeat("é", 60)
	require.NoError(t, service.CreateStudent(ctx, &models.Student{Name: accented, Age: 20}))
	assert.Len(t, repo.students, 1)

	err := service.CreateStudent(ctx, &models.Student{Name: strings.Repeat("é", StudentNameMaxLength+1), Age: 20})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentOverwritesNameAndAgeOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)
	ctx := context.Background()

	student := &models.Student{Name: "Alice", Age: 20, Courses: []models.Course{{ID: 1, Title: "Algebra"}}}
	require.NoError(t, repo.Create(ctx, student))

	update := &models.Student{
		ID:   student.ID,
		Name: "Alicia",
		Age:  21,
		// A diverging course list on the payload must be ignored
		Courses: []models.Course{{ID: 99, Title: "Chemistry"}},
	}
	require.NoError(t, service.UpdateStudent(ctx, update))

	got, err := service.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, 21, got.Age)
	require.Len(t, got.Courses, 1, "enrollment must not change through update")
	assert.Equal(t, "Algebra", got.Courses[0].Title)
}

func TestUpdateStudentNotFound(t *testing.T) {
	t.Parallel()

	service := NewStudentService(newFakeStudentRepo())

	err := service.UpdateStudent(context.Background(), &models.Student{ID: 42, Name: "Ghost", Age: 1})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	t.Parallel()

	service := NewStudentService(newFakeStudentRepo())

	_, err := service.GetStudentByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetAllStudentsEmptyStore(t *testing.T) {
	t.Parallel()

	service := NewStudentService(newFakeStudentRepo())

	students, err := service.GetAllStudents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.NotNil(t, students, "empty store must yield an empty sequence, not nil")
}

func TestStudentServiceStoreFailurePassthrough(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	repo.failWith = errors.New("connection refused")
	service := NewStudentService(repo)
	ctx := context.Background()

	_, err := service.GetAllStudents(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	err = service.CreateStudent(ctx, &models.Student{Name: "Alice", Age: 20})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteStudent(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)
	ctx := context.Background()

	student := &models.Student{Name: "Alice", Age: 20}
	require.NoError(t, repo.Create(ctx, student))

	require.NoError(t, service.DeleteStudent(ctx, student.ID))
	assert.Empty(t, repo.students)

	err := service.DeleteStudent(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
