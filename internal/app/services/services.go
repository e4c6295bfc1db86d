package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
)

// Services defined in this package:
// - UserService: user listing
// - SectionService: section reads, roster and section metadata updates
// - StudentService: student reads, derived course/mentor lookups and attendance

// UserStore is the user data access the services need
type UserStore interface {
	GetAll(ctx context.Context) ([]*models.User, error)
}

// SectionStore is the section data access the services need
type SectionStore interface {
	GetAll(ctx context.Context) ([]*models.Section, error)
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, section *models.Section) error
}

// StudentStore is the student data access the services need
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetActiveBySectionID(ctx context.Context, sectionID int64) ([]*models.Student, error)
}

// MentorStore is the mentor data access the services need
type MentorStore interface {
	GetByID(ctx context.Context, id int64) (*models.Mentor, error)
}

// AttendanceStore is the attendance data access the services need
type AttendanceStore interface {
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error)
	UpdatePresence(ctx context.Context, id int64, presence models.Presence) error
}

func validateID(id int64, entity string) error {
	if id <= 0 {
		return apperrors.NewValidationError(fmt.Sprintf("invalid %s ID", entity))
	}
	return nil
}

// passNotFound returns lookup misses unchanged so their message reaches the
// client, and wraps everything else with op.
func passNotFound(err error, op string) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
