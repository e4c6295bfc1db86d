package models

// Mentor defines the mentor model based on the 'mentors' table
type Mentor struct {
	ID     int64 `json:"id" db:"id" example:"1"`           // Unique identifier for the mentor record
	UserID int64 `json:"user_id" db:"user_id" example:"4"` // ID of the associated user account

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
}
