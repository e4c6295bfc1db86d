package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
)

func newSectionFixture() (*memStore, SectionService) {
	m := newMemStore()
	m.sections[1] = &models.Section{ID: 1, CourseID: int64Ptr(10), Capacity: 20, Description: "Monday lab"}
	m.sections[2] = &models.Section{ID: 2, Capacity: 15, Description: "Wednesday lab"}
	m.students[1] = &models.Student{ID: 1, SectionID: 1, Active: true}
	m.students[2] = &models.Student{ID: 2, SectionID: 1, Active: false}
	m.students[3] = &models.Student{ID: 3, SectionID: 2, Active: true}
	m.students[4] = &models.Student{ID: 4, SectionID: 1, Active: true}
	return m, NewSectionService(sectionStore{m}, studentStore{m})
}

func TestListSections(t *testing.T) {
	_, svc := newSectionFixture()

	sections, err := svc.ListSections(context.Background())
	require.NoError(t, err)
	assert.Len(t, sections, 2)
}

func TestGetSection(t *testing.T) {
	_, svc := newSectionFixture()

	section, err := svc.GetSection(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Wednesday lab", section.Description)

	_, err = svc.GetSection(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)

	_, err = svc.GetSection(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListRosterReturnsOnlyActiveStudentsOfSection(t *testing.T) {
	_, svc := newSectionFixture()

	roster, err := svc.ListRoster(context.Background(), 1)
	require.NoError(t, err)

	ids := []int64{}
	for _, s := range roster {
		assert.True(t, s.Active)
		assert.Equal(t, int64(1), s.SectionID)
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{1, 4}, ids)
}

func TestListRosterUnknownSection(t *testing.T) {
	_, svc := newSectionFixture()

	_, err := svc.ListRoster(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}

func TestUpdateSectionCapacityOnlyKeepsDescription(t *testing.T) {
	m, svc := newSectionFixture()

	require.NoError(t, svc.UpdateSection(context.Background(), 1, SectionUpdate{Capacity: intPtr(30)}))

	assert.Equal(t, 30, m.sections[1].Capacity)
	assert.Equal(t, "Monday lab", m.sections[1].Description)
}

func TestUpdateSectionDescriptionOnlyKeepsCapacity(t *testing.T) {
	m, svc := newSectionFixture()

	require.NoError(t, svc.UpdateSection(context.Background(), 1, SectionUpdate{Description: strPtr("Moved to Friday")}))

	assert.Equal(t, 20, m.sections[1].Capacity)
	assert.Equal(t, "Moved to Friday", m.sections[1].Description)
}

func TestUpdateSectionNeitherFieldStillSaves(t *testing.T) {
	m, svc := newSectionFixture()

	require.NoError(t, svc.UpdateSection(context.Background(), 2, SectionUpdate{}))

	assert.Equal(t, 1, m.sectionSaves)
	assert.Equal(t, 15, m.sections[2].Capacity)
	assert.Equal(t, "Wednesday lab", m.sections[2].Description)
}

func TestUpdateSectionEmptyDescriptionIsApplied(t *testing.T) {
	m, svc := newSectionFixture()

	require.NoError(t, svc.UpdateSection(context.Background(), 1, SectionUpdate{Description: strPtr(""), Capacity: intPtr(0)}))

	assert.Equal(t, 0, m.sections[1].Capacity)
	assert.Equal(t, "", m.sections[1].Description)
}

func TestUpdateSectionErrors(t *testing.T) {
	m, svc := newSectionFixture()

	err := svc.UpdateSection(context.Background(), 77, SectionUpdate{Capacity: intPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)

	err = svc.UpdateSection(context.Background(), 1, SectionUpdate{Capacity: intPtr(-5)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, 0, m.sectionSaves)
}

func TestListSectionsWrapsStoreErrors(t *testing.T) {
	m, svc := newSectionFixture()
	m.failOn = errBoom

	_, err := svc.ListSections(context.Background())
	assert.True(t, errors.Is(err, errBoom))
	assert.False(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
