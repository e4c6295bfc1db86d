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

var studentWithUserColumns = []string{
	"s.id", "s.user_id", "s.section_id", "s.active",
	"u.id", "u.username", "u.email", "u.first_name", "u.last_name", "u.created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.DBTX) *StudentRepository {
	return &StudentRepository{db: conn, sb: statementBuilder()}
}

// WithTx returns a copy bound to tx
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return NewStudentRepository(tx)
}

func scanStudentWithUser(row pgx.Row) (*models.Student, error) {
	s := &models.Student{User: &models.User{}}
	u := s.User
	err := row.Scan(&s.ID, &s.UserID, &s.SectionID, &s.Active,
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
	return s, err
}

func (r *StudentRepository) selectWithUser() squirrel.SelectBuilder {
	return r.sb.Select(studentWithUserColumns...).
		From("students s").
		Join("users u ON u.id = s.user_id")
}

// GetByID retrieves a student with its user by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectWithUser().Where(squirrel.Eq{"s.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudentWithUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			logger.Debug().Int64("studentID", id).Msg("Student not found")
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return s, nil
}

func (r *StudentRepository) activeBySectionQuery(sectionID int64) (string, []interface{}, error) {
	return r.selectWithUser().
		Where(squirrel.Eq{"s.section_id": sectionID, "s.active": true}).
		OrderBy("s.id ASC").
		ToSql()
}

// GetActiveBySectionID retrieves the currently enrolled students of a section
func (r *StudentRepository) GetActiveBySectionID(ctx context.Context, sectionID int64) ([]*models.Student, error) {
	sql, args, err := r.activeBySectionQuery(sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to build section roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sectionID", sectionID).Msg("Error executing section roster query")
		return nil, fmt.Errorf("error querying section roster: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudentWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a student enrollment and fills in its ID
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "section_id", "active").
		Values(s.UserID, s.SectionID, s.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err, "students_section_id_fkey") {
			return apperrors.ErrSectionNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "students_user_id_fkey") {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}
