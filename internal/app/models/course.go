package models

// Course represents a course students can enroll in.
type Course struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"` // Required, at most 200 characters

	// Enrolled students (populated when needed)
	Students []Student `json:"students,omitempty"`
}
