package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/db"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{db: conn, sb: statementBuilder()}
}

// WithTx returns a copy bound to tx
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return NewCourseRepository(tx)
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c := &models.Course{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return c, nil
}

// Create inserts a course and fills in its ID
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "description").
		Values(c.Name, c.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}
