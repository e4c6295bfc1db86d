package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/helpers"
)

func newStudentFixture() (*memStore, StudentService) {
	m := newMemStore()
	m.mentors[5] = &models.Mentor{ID: 5, UserID: 50, User: &models.User{ID: 50, FirstName: "Ada", LastName: "Lovelace"}}
	m.sections[1] = &models.Section{ID: 1, CourseID: int64Ptr(10), MentorID: int64Ptr(5)}
	m.sections[2] = &models.Section{ID: 2}
	m.students[7] = &models.Student{ID: 7, SectionID: 1, Active: true}
	m.students[8] = &models.Student{ID: 8, SectionID: 2, Active: true}
	m.attendances = []*models.Attendance{
		{ID: 100, StudentID: 7, Date: day("2024-01-10"), Presence: models.PresenceUnexcusedAbsence},
		{ID: 101, StudentID: 7, Date: day("2024-01-11"), Presence: models.PresencePresent},
		{ID: 102, StudentID: 8, Date: day("2024-01-10"), Presence: models.PresenceExcusedAbsence},
	}
	svc := NewStudentService(studentStore{m}, sectionStore{m}, mentorStore{m}, attendanceStore{m})
	return m, svc
}

func TestGetStudent(t *testing.T) {
	_, svc := newStudentFixture()

	st, err := svc.GetStudent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.SectionID)

	_, err = svc.GetStudent(context.Background(), 70)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.GetStudent(context.Background(), -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetStudentCourse(t *testing.T) {
	_, svc := newStudentFixture()

	courseID, err := svc.GetStudentCourse(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, courseID)
	assert.Equal(t, int64(10), *courseID)

	courseID, err = svc.GetStudentCourse(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, courseID)
}

func TestGetStudentCourseUnknownStudent(t *testing.T) {
	_, svc := newStudentFixture()

	_, err := svc.GetStudentCourse(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, "Student not found", err.Error())
}

func TestGetStudentMentor(t *testing.T) {
	_, svc := newStudentFixture()

	mentor, err := svc.GetStudentMentor(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada", mentor.User.FirstName)
}

func TestGetStudentMentorDistinguishesMissingMentorFromMissingStudent(t *testing.T) {
	_, svc := newStudentFixture()

	_, err := svc.GetStudentMentor(context.Background(), 8)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, "Mentor not found for the student's section", err.Error())

	_, err = svc.GetStudentMentor(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListAttendance(t *testing.T) {
	_, svc := newStudentFixture()

	records, err := svc.ListAttendance(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(100), records[0].ID)
	assert.Equal(t, int64(101), records[1].ID)

	_, err = svc.ListAttendance(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateAttendanceOverwritesMatchingDatesOnly(t *testing.T) {
	m, svc := newStudentFixture()

	result, err := svc.UpdateAttendance(context.Background(), 7, map[string]models.Presence{
		"2024-01-10": models.PresencePresent,
		"2024-01-12": models.PresenceExcusedAbsence,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, []string{"2024-01-12"}, result.Ignored)

	records, err := svc.ListAttendance(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, records, 2, "no row is created for 2024-01-12")

	byDate := map[string]*models.Attendance{}
	for _, r := range records {
		byDate[helpers.FormatDate(r.Date)] = r
	}
	assert.Equal(t, models.PresencePresent, byDate["2024-01-10"].Presence)
	assert.Equal(t, models.PresencePresent, byDate["2024-01-11"].Presence)
	assert.Equal(t, int64(7), byDate["2024-01-10"].StudentID)
	assert.Equal(t, int64(100), byDate["2024-01-10"].ID)

	assert.Equal(t, models.PresenceExcusedAbsence, m.attendances[2].Presence, "other students untouched")
	assert.Equal(t, []int64{100}, m.presenceSets)
}

func TestUpdateAttendanceAnyTransitionAllowed(t *testing.T) {
	m, svc := newStudentFixture()

	for _, p := range []models.Presence{models.PresenceExcusedAbsence, models.PresenceUnexcusedAbsence, models.PresencePresent, models.PresenceUnexcusedAbsence} {
		_, err := svc.UpdateAttendance(context.Background(), 7, map[string]models.Presence{"2024-01-11": p})
		require.NoError(t, err)
		assert.Equal(t, p, m.attendances[1].Presence)
	}
}

func TestUpdateAttendanceRejectsBadInputBeforeWriting(t *testing.T) {
	m, svc := newStudentFixture()

	_, err := svc.UpdateAttendance(context.Background(), 7, map[string]models.Presence{
		"2024-01-10": models.PresencePresent,
		"2024-01-11": "AB",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, m.presenceSets)
	assert.Equal(t, models.PresenceUnexcusedAbsence, m.attendances[0].Presence)
}

func TestUpdateAttendanceIgnoresMalformedDates(t *testing.T) {
	m, svc := newStudentFixture()

	result, err := svc.UpdateAttendance(context.Background(), 7, map[string]models.Presence{
		"Jan 10":     models.PresenceExcusedAbsence,
		"2024-1-11":  models.PresenceExcusedAbsence,
		"2024-01-10": models.PresencePresent,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, []string{"2024-1-11", "Jan 10"}, result.Ignored)
	assert.Equal(t, []int64{100}, m.presenceSets)
	assert.Equal(t, models.PresencePresent, m.attendances[0].Presence)
	assert.Equal(t, models.PresencePresent, m.attendances[1].Presence)
}

func TestUpdateAttendanceUnknownStudent(t *testing.T) {
	_, svc := newStudentFixture()

	_, err := svc.UpdateAttendance(context.Background(), 404, map[string]models.Presence{"2024-01-10": models.PresencePresent})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateAttendanceEmptyBodyIsNoop(t *testing.T) {
	m, svc := newStudentFixture()

	result, err := svc.UpdateAttendance(context.Background(), 7, map[string]models.Presence{})
	require.NoError(t, err)
	assert.Zero(t, result.Updated)
	assert.Empty(t, result.Ignored)
	assert.Empty(t, m.presenceSets)
}

func TestUpdateAttendanceStoreFailureIsNotNotFound(t *testing.T) {
	m, svc := newStudentFixture()
	m.failOn = errBoom

	_, err := svc.UpdateAttendance(context.Background(), 7, map[string]models.Presence{"2024-01-10": models.PresencePresent})
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
}
