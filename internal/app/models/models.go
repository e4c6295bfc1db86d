package models

// Presence is the attendance status recorded for a student on a given date.
type Presence string

const (
	PresencePresent          Presence = "PR"
	PresenceUnexcusedAbsence Presence = "UN"
	PresenceExcusedAbsence   Presence = "EX"
)

// Presences lists every accepted presence code.
var Presences = []Presence{PresencePresent, PresenceUnexcusedAbsence, PresenceExcusedAbsence}

// IsValid reports whether p is one of the known presence codes
func (p Presence) IsValid() bool {
	switch p {
	case PresencePresent, PresenceUnexcusedAbsence, PresenceExcusedAbsence:
		return true
	}
	return false
}
