package models

// Student is an enrollment record tying a user to exactly one section.
// Inactive students are withdrawn or historical and keep their attendance.
type Student struct {
	ID        int64 `json:"id" db:"id" example:"7"`                 // Unique identifier for the enrollment record
	UserID    int64 `json:"user_id" db:"user_id" example:"5"`       // ID of the associated user account
	SectionID int64 `json:"section_id" db:"section_id" example:"2"` // Section the student is enrolled in
	Active    bool  `json:"active" db:"active" example:"true"`      // Current enrollment flag

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
}
