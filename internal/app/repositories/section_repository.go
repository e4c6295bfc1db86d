package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/db"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/dberrors"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
)

var sectionColumns = []string{"id", "course_id", "mentor_id", "capacity", "description"}

// SectionRepository handles section database operations
type SectionRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(conn db.DBTX) *SectionRepository {
	return &SectionRepository{db: conn, sb: statementBuilder()}
}

// WithTx returns a copy bound to tx
func (r *SectionRepository) WithTx(tx pgx.Tx) *SectionRepository {
	return NewSectionRepository(tx)
}

func scanSection(row pgx.Row, s *models.Section) error {
	return row.Scan(&s.ID, &s.CourseID, &s.MentorID, &s.Capacity, &s.Description)
}

// GetAll retrieves all sections ordered by id
func (r *SectionRepository) GetAll(ctx context.Context) ([]*models.Section, error) {
	sql, args, err := r.sb.Select(sectionColumns...).From("sections").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all sections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all sections query")
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	sections := []*models.Section{}
	for rows.Next() {
		s := &models.Section{}
		if err := scanSection(rows, s); err != nil {
			return nil, fmt.Errorf("error scanning section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}

	return sections, nil
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	sql, args, err := r.sb.Select(sectionColumns...).From("sections").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get section query: %w", err)
	}

	s := &models.Section{}
	if err := scanSection(r.db.QueryRow(ctx, sql, args...), s); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrSectionNotFound
		}
		logger.Error().Err(err).Int64("sectionID", id).Msg("Error scanning section row")
		return nil, fmt.Errorf("error getting section by ID: %w", err)
	}
	return s, nil
}

// Exists reports whether a section with the given ID exists
func (r *SectionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("sections").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build section exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking section existence: %w", err)
	}
	return exists, nil
}

func (r *SectionRepository) updateQuery(s *models.Section) (string, []interface{}, error) {
	return r.sb.Update("sections").
		SetMap(map[string]interface{}{
			"capacity":    s.Capacity,
			"description": s.Description,
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
}

// Update persists the mutable fields of a section (capacity, description)
func (r *SectionRepository) Update(ctx context.Context, s *models.Section) error {
	sql, args, err := r.updateQuery(s)
	if err != nil {
		return fmt.Errorf("failed to build update section query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err, "") {
			return apperrors.NewValidationError("capacity must not be negative")
		}
		logger.Error().Err(err).Int64("sectionID", s.ID).Msg("Error executing update section query")
		return fmt.Errorf("error updating section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}
	return nil
}

// Create inserts a section and fills in its ID
func (r *SectionRepository) Create(ctx context.Context, s *models.Section) error {
	sql, args, err := r.sb.Insert("sections").
		Columns("course_id", "mentor_id", "capacity", "description").
		Values(s.CourseID, s.MentorID, s.Capacity, s.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create section query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sections_mentor_id_key") {
			return apperrors.NewConflictError("mentor is already assigned to another section")
		}
		return fmt.Errorf("error creating section: %w", err)
	}
	return nil
}
