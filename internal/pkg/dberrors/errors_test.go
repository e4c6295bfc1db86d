package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "attendances_student_id_date_key"})

	assert.True(t, IsDuplicateConstraintError(err, "attendances_student_id_date_key"))
	assert.True(t, IsDuplicateConstraintError(err, ""))
	assert.False(t, IsDuplicateConstraintError(err, "users_username_key"))
	assert.False(t, IsForeignKeyViolation(err, ""))
}

func TestIsForeignKeyAndCheckViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "students_section_id_fkey"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "attendances_presence_check"}

	assert.True(t, IsForeignKeyViolation(fk, "students_section_id_fkey"))
	assert.True(t, IsCheckViolation(check, ""))
	assert.False(t, IsCheckViolation(errors.New("plain"), ""))
}
