package models

// Section is a scheduled instance of a Course with a capacity, an optional
// mentor and a free-text description.
type Section struct {
	ID          int64  `json:"id" db:"id"`
	CourseID    *int64 `json:"course_id" db:"course_id"` // Nullable
	MentorID    *int64 `json:"mentor_id" db:"mentor_id"` // Nullable, no mentor assigned yet
	Capacity    int    `json:"capacity" db:"capacity"`
	Description string `json:"description" db:"description"`
}
