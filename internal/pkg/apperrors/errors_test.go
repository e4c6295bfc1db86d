package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsUnwrapToNotFound(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrCourseNotFound, ErrMentorNotFound, ErrSectionNotFound, ErrStudentNotFound, ErrAttendanceNotFound} {
		assert.True(t, errors.Is(err, ErrResourceNotFound), err.Error())
	}
	assert.False(t, errors.Is(ErrStudentNotFound, ErrMentorNotFound))
}

func TestWrappedSentinelKeepsIdentityAndMessage(t *testing.T) {
	wrapped := fmt.Errorf("loading student 7: %w", ErrStudentNotFound)

	assert.True(t, errors.Is(wrapped, ErrStudentNotFound))
	assert.True(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.Equal(t, "Student not found", Message(wrapped, "fallback"))
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", Message(NewCustomError(ErrConflict, ""), "fallback"))
}

func TestCustomErrorText(t *testing.T) {
	assert.Equal(t, "resource not found", (&CustomError{Err: ErrResourceNotFound}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
	ce := NewCustomError(ErrConflict, "taken").WithCode("RES_004").WithDetails(map[string]interface{}{"id": 1})
	assert.Equal(t, "RES_004", ce.Code)
	assert.Equal(t, 1, ce.Details["id"])
}
