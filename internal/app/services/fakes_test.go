package services

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
)

// memStore is an in-memory stand-in for every repository the services use.
type memStore struct {
	users       []*models.User
	sections    map[int64]*models.Section
	students    map[int64]*models.Student
	mentors     map[int64]*models.Mentor
	attendances []*models.Attendance

	failOn       error
	sectionSaves int
	presenceSets []int64
}

func newMemStore() *memStore {
	return &memStore{
		sections: map[int64]*models.Section{},
		students: map[int64]*models.Student{},
		mentors:  map[int64]*models.Mentor{},
	}
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func (m *memStore) GetAll(ctx context.Context) ([]*models.User, error) {
	if m.failOn != nil {
		return nil, m.failOn
	}
	return m.users, nil
}

type sectionStore struct{ *memStore }

func (s sectionStore) GetAll(ctx context.Context) ([]*models.Section, error) {
	if s.failOn != nil {
		return nil, s.failOn
	}
	out := []*models.Section{}
	for id := int64(1); id <= int64(len(s.sections)); id++ {
		if sec, ok := s.sections[id]; ok {
			out = append(out, sec)
		}
	}
	return out, nil
}

func (s sectionStore) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	sec, ok := s.sections[id]
	if !ok {
		return nil, apperrors.ErrSectionNotFound
	}
	cp := *sec
	return &cp, nil
}

func (s sectionStore) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := s.sections[id]
	return ok, nil
}

func (s sectionStore) Update(ctx context.Context, sec *models.Section) error {
	if _, ok := s.sections[sec.ID]; !ok {
		return apperrors.ErrSectionNotFound
	}
	cp := *sec
	s.sections[sec.ID] = &cp
	s.sectionSaves++
	return nil
}

type studentStore struct{ *memStore }

func (s studentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (s studentStore) GetActiveBySectionID(ctx context.Context, sectionID int64) ([]*models.Student, error) {
	out := []*models.Student{}
	for id := int64(1); id <= 100; id++ {
		if st, ok := s.students[id]; ok && st.SectionID == sectionID && st.Active {
			out = append(out, st)
		}
	}
	return out, nil
}

type mentorStore struct{ *memStore }

func (s mentorStore) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	mt, ok := s.mentors[id]
	if !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	return mt, nil
}

type attendanceStore struct{ *memStore }

func (s attendanceStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	out := []*models.Attendance{}
	for _, a := range s.attendances {
		if a.StudentID == studentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s attendanceStore) UpdatePresence(ctx context.Context, id int64, presence models.Presence) error {
	if s.failOn != nil {
		return s.failOn
	}
	for _, a := range s.attendances {
		if a.ID == id {
			a.Presence = presence
			s.presenceSets = append(s.presenceSets, id)
			return nil
		}
	}
	return apperrors.ErrAttendanceNotFound
}

var errBoom = errors.New("connection reset")
