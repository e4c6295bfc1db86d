package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sectiontrack/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	MentorRepository     *MentorRepository
	SectionRepository    *SectionRepository
	StudentRepository    *StudentRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories over the same connection
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(conn),
		CourseRepository:     NewCourseRepository(conn),
		MentorRepository:     NewMentorRepository(conn),
		SectionRepository:    NewSectionRepository(conn),
		StudentRepository:    NewStudentRepository(conn),
		AttendanceRepository: NewAttendanceRepository(conn),
	}
}

// WithTx returns a set of repositories bound to tx
func (r *Repositories) WithTx(tx pgx.Tx) *Repositories {
	return &Repositories{
		UserRepository:       r.UserRepository.WithTx(tx),
		CourseRepository:     r.CourseRepository.WithTx(tx),
		MentorRepository:     r.MentorRepository.WithTx(tx),
		SectionRepository:    r.SectionRepository.WithTx(tx),
		StudentRepository:    r.StudentRepository.WithTx(tx),
		AttendanceRepository: r.AttendanceRepository.WithTx(tx),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
