package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/helpers"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
)

// AttendanceUpdateResult counts what an attendance update touched.
// Ignored holds the requested dates that had no existing row.
type AttendanceUpdateResult struct {
	Updated int
	Ignored []string
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	GetStudentCourse(ctx context.Context, id int64) (*int64, error)
	GetStudentMentor(ctx context.Context, id int64) (*models.Mentor, error)
	ListAttendance(ctx context.Context, id int64) ([]*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, updates map[string]models.Presence) (*AttendanceUpdateResult, error)
}

type studentServiceImpl struct {
	studentRepo    StudentStore
	sectionRepo    SectionStore
	mentorRepo     MentorStore
	attendanceRepo AttendanceStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, sectionRepo SectionStore, mentorRepo MentorStore, attendanceRepo AttendanceStore) StudentService {
	return &studentServiceImpl{
		studentRepo:    studentRepo,
		sectionRepo:    sectionRepo,
		mentorRepo:     mentorRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetStudent returns a single student with its user
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if err := validateID(id, "student"); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, passNotFound(err, "error retrieving student")
	}
	return student, nil
}

func (s *studentServiceImpl) sectionOf(ctx context.Context, id int64) (*models.Section, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	section, err := s.sectionRepo.GetByID(ctx, student.SectionID)
	if err != nil {
		return nil, passNotFound(err, "error retrieving student's section")
	}
	return section, nil
}

// GetStudentCourse resolves student -> section -> course id. The id is nil
// when the section has no course.
func (s *studentServiceImpl) GetStudentCourse(ctx context.Context, id int64) (*int64, error) {
	section, err := s.sectionOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return section.CourseID, nil
}

// GetStudentMentor resolves student -> section -> mentor
func (s *studentServiceImpl) GetStudentMentor(ctx context.Context, id int64) (*models.Mentor, error) {
	section, err := s.sectionOf(ctx, id)
	if err != nil {
		return nil, err
	}
	if section.MentorID == nil {
		return nil, apperrors.ErrMentorNotFound
	}

	mentor, err := s.mentorRepo.GetByID(ctx, *section.MentorID)
	if err != nil {
		return nil, passNotFound(err, "error retrieving mentor")
	}
	return mentor, nil
}

// ListAttendance returns every attendance row of the student in insertion order
func (s *studentServiceImpl) ListAttendance(ctx context.Context, id int64) ([]*models.Attendance, error) {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	return records, nil
}

// UpdateAttendance overwrites the presence of every existing row whose date is
// a key of updates. Dates without a row, malformed ones included, are ignored;
// no row is ever created.
// Rows are saved one at a time, so a failure mid-way leaves earlier rows updated.
func (s *studentServiceImpl) UpdateAttendance(ctx context.Context, id int64, updates map[string]models.Presence) (*AttendanceUpdateResult, error) {
	if err := validateAttendanceUpdates(updates); err != nil {
		return nil, err
	}

	records, err := s.ListAttendance(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &AttendanceUpdateResult{}
	matched := make(map[string]bool, len(updates))
	for _, record := range records {
		date := helpers.FormatDate(record.Date)
		presence, ok := updates[date]
		if !ok {
			continue
		}
		if err := s.attendanceRepo.UpdatePresence(ctx, record.ID, presence); err != nil {
			return nil, passNotFound(err, fmt.Sprintf("error updating attendance for %s", date))
		}
		record.Presence = presence
		matched[date] = true
		result.Updated++
	}

	var malformed []string
	for date := range updates {
		if matched[date] {
			continue
		}
		result.Ignored = append(result.Ignored, date)
		if !helpers.IsDate(date) {
			malformed = append(malformed, date)
		}
	}
	sort.Strings(result.Ignored)

	l := logger.FromContext(ctx)
	l.Info().Int64("studentID", id).Int("updated", result.Updated).Msg("Attendance updated")
	if len(result.Ignored) > 0 {
		l.Debug().Int64("studentID", id).Strs("ignoredDates", result.Ignored).Msg("No attendance row for requested dates")
	}
	if len(malformed) > 0 {
		sort.Strings(malformed)
		l.Debug().Int64("studentID", id).Strs("malformedDates", malformed).Msg("Requested dates are not YYYY-MM-DD")
	}
	return result, nil
}

func validateAttendanceUpdates(updates map[string]models.Presence) error {
	for date, presence := range updates {
		if !presence.IsValid() {
			return apperrors.NewValidationError(fmt.Sprintf("invalid presence %q for %s, expected one of PR, UN, EX", presence, date))
		}
	}
	return nil
}
