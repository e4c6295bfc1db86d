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

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(conn db.DBTX) *AttendanceRepository {
	return &AttendanceRepository{db: conn, sb: statementBuilder()}
}

// WithTx returns a copy bound to tx
func (r *AttendanceRepository) WithTx(tx pgx.Tx) *AttendanceRepository {
	return NewAttendanceRepository(tx)
}

func (r *AttendanceRepository) byStudentQuery(studentID int64) (string, []interface{}, error) {
	return r.sb.Select("id", "student_id", "date", "presence").
		From("attendances").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
}

// GetByStudentID retrieves all attendance rows of a student in insertion order
func (r *AttendanceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	sql, args, err := r.byStudentQuery(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to build get attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get attendance query")
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Presence); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

func (r *AttendanceRepository) updatePresenceQuery(id int64, presence models.Presence) (string, []interface{}, error) {
	return r.sb.Update("attendances").
		Set("presence", string(presence)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// UpdatePresence overwrites the presence of a single attendance row.
// Only the presence column is written.
func (r *AttendanceRepository) UpdatePresence(ctx context.Context, id int64, presence models.Presence) error {
	sql, args, err := r.updatePresenceQuery(id, presence)
	if err != nil {
		return fmt.Errorf("failed to build update presence query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err, "attendances_presence_check") {
			return apperrors.ErrInvalidPresence
		}
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error executing update presence query")
		return fmt.Errorf("error updating attendance presence: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}

// Create records a new session date for a student
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	sql, args, err := r.sb.Insert("attendances").
		Columns("student_id", "date", "presence").
		Values(a.StudentID, a.Date, string(a.Presence)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create attendance query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "attendances_student_id_date_key"):
			return apperrors.ErrDuplicateAttendance
		case dberrors.IsForeignKeyViolation(err, ""):
			return apperrors.ErrStudentNotFound
		case dberrors.IsCheckViolation(err, ""):
			return apperrors.ErrInvalidPresence
		}
		return fmt.Errorf("error creating attendance: %w", err)
	}
	return nil
}
