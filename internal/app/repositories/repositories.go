package repositories

import (
	"github.com/okanck/studentapi/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(database),
		CourseRepository:  NewCourseRepository(database),
	}
}
