package models

import "time"

// Attendance is the presence of one student on one session date.
// (student_id, date) is unique.
type Attendance struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	Date      time.Time `json:"-" db:"date"`
	Presence  Presence  `json:"presence" db:"presence"`
}
