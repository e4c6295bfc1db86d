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

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(conn db.DBTX) *MentorRepository {
	return &MentorRepository{db: conn, sb: statementBuilder()}
}

// WithTx returns a copy bound to tx
func (r *MentorRepository) WithTx(tx pgx.Tx) *MentorRepository {
	return NewMentorRepository(tx)
}

func (r *MentorRepository) getByIDQuery(id int64) (string, []interface{}, error) {
	return r.sb.Select("m.id", "m.user_id",
		"u.id", "u.username", "u.email", "u.first_name", "u.last_name", "u.created_at").
		From("mentors m").
		Join("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
}

// GetByID retrieves a mentor with its user by ID
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	sql, args, err := r.getByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build get mentor query: %w", err)
	}

	m := &models.Mentor{User: &models.User{}}
	u := m.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.UserID,
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrMentorNotFound
		}
		logger.Error().Err(err).Int64("mentorID", id).Msg("Error scanning mentor row")
		return nil, fmt.Errorf("error getting mentor by ID: %w", err)
	}
	return m, nil
}

// Create inserts a mentor for an existing user
func (r *MentorRepository) Create(ctx context.Context, m *models.Mentor) error {
	sql, args, err := r.sb.Insert("mentors").
		Columns("user_id").
		Values(m.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create mentor query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating mentor: %w", err)
	}
	return nil
}
