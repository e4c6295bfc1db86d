package services

import (
	"context"
	"fmt"

	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
)

// SectionUpdate holds the optional fields of a section update. Nil means "leave as is".
type SectionUpdate struct {
	Capacity    *int
	Description *string
}

// SectionService defines the interface for section-related operations
type SectionService interface {
	ListSections(ctx context.Context) ([]*models.Section, error)
	GetSection(ctx context.Context, id int64) (*models.Section, error)
	ListRoster(ctx context.Context, sectionID int64) ([]*models.Student, error)
	UpdateSection(ctx context.Context, id int64, update SectionUpdate) error
}

type sectionServiceImpl struct {
	sectionRepo SectionStore
	studentRepo StudentStore
}

// NewSectionService creates a new section service instance
func NewSectionService(sectionRepo SectionStore, studentRepo StudentStore) SectionService {
	return &sectionServiceImpl{
		sectionRepo: sectionRepo,
		studentRepo: studentRepo,
	}
}

// ListSections returns every section
func (s *sectionServiceImpl) ListSections(ctx context.Context) ([]*models.Section, error) {
	sections, err := s.sectionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}
	return sections, nil
}

// GetSection returns a single section
func (s *sectionServiceImpl) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	if err := validateID(id, "section"); err != nil {
		return nil, err
	}

	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, passNotFound(err, "error retrieving section")
	}
	return section, nil
}

// ListRoster returns the active students of a section
func (s *sectionServiceImpl) ListRoster(ctx context.Context, sectionID int64) ([]*models.Student, error) {
	if err := validateID(sectionID, "section"); err != nil {
		return nil, err
	}

	exists, err := s.sectionRepo.Exists(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error checking section: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrSectionNotFound
	}

	students, err := s.studentRepo.GetActiveBySectionID(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section roster: %w", err)
	}
	return students, nil
}

// UpdateSection applies the supplied fields of update and persists the section
func (s *sectionServiceImpl) UpdateSection(ctx context.Context, id int64, update SectionUpdate) error {
	if err := validateID(id, "section"); err != nil {
		return err
	}
	if update.Capacity != nil && *update.Capacity < 0 {
		return apperrors.NewValidationError("capacity must not be negative")
	}

	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return passNotFound(err, "error loading section")
	}

	if update.Capacity != nil {
		section.Capacity = *update.Capacity
	}
	if update.Description != nil {
		section.Description = *update.Description
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return passNotFound(err, "error updating section")
	}

	logger.FromContext(ctx).Info().
		Int64("sectionID", id).
		Bool("capacitySet", update.Capacity != nil).
		Bool("descriptionSet", update.Description != nil).
		Msg("Section updated")
	return nil
}
