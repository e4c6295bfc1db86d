package dto

import (
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/helpers"
)

// AttendanceResponse is one attendance row with its date as "YYYY-MM-DD"
type AttendanceResponse struct {
	ID        int64           `json:"id" example:"41"`
	StudentID int64           `json:"student_id" example:"7"`
	Date      string          `json:"date" example:"2024-01-10"`
	Presence  models.Presence `json:"presence" example:"PR" enums:"PR,UN,EX"`
}

// UpdateAttendanceRequest maps a session date ("YYYY-MM-DD") to its new presence code.
// A null code leaves that date untouched.
type UpdateAttendanceRequest map[string]*models.Presence

// Supplied returns the entries that carry a code, dropping nulls.
func (r UpdateAttendanceRequest) Supplied() map[string]models.Presence {
	out := make(map[string]models.Presence, len(r))
	for date, presence := range r {
		if presence != nil {
			out[date] = *presence
		}
	}
	return out
}

// AttendanceValidationTag is the validator rule applied to the supplied codes
const AttendanceValidationTag = "dive,oneof=PR UN EX"

// FromAttendance converts a model.Attendance to an AttendanceResponse
func FromAttendance(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		StudentID: a.StudentID,
		Date:      helpers.FormatDate(a.Date),
		Presence:  a.Presence,
	}
}

// FromAttendances converts a slice, never returning nil
func FromAttendances(records []*models.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, FromAttendance(a))
	}
	return out
}
