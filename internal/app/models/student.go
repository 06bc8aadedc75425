package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID   int64  `json:"id" db:"id" example:"1"`          // Unique identifier, assigned by the store
	Name string `json:"name" db:"name" example:"Alice"`  // Required, at most 100 characters
	Age  int    `json:"age" db:"age" example:"20"`       // Non-negative, enforced by a check constraint

	// Courses the student is enrolled in (many-to-many, order irrelevant)
	Courses []Course `json:"courses"`
}
