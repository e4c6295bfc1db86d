package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"jdoe"`                    // Login handle, unique
	Email     string    `json:"email" db:"email" example:"jdoe@school.edu"`               // Contact address
	FirstName string    `json:"first_name" db:"first_name" example:"John"`                // User's first name
	LastName  string    `json:"last_name" db:"last_name" example:"Doe"`                   // User's last name
	CreatedAt time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
