package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/sectiontrack/internal/app/models"
	appRepos "github.com/yigit/sectiontrack/internal/app/repositories"
	"github.com/yigit/sectiontrack/internal/db"
	"github.com/yigit/sectiontrack/internal/pkg/apperrors"
	"github.com/yigit/sectiontrack/internal/pkg/helpers"
)

// MarkerUsername identifies the seeded data set; when it exists nothing is inserted.
const MarkerUsername = "demo.mentor"

// Dataset is the demo data inserted into an empty database
type Dataset struct {
	Mentor     appModels.User
	Students   []DemoStudent
	Course     appModels.Course
	Sections   []DemoSection
	Attendance map[string][]appModels.Presence // username -> presence per session date
	Sessions   []string
}

// DemoStudent is a user enrolled in the section at SectionIndex
type DemoStudent struct {
	User         appModels.User
	SectionIndex int
	Active       bool
}

// DemoSection is a section; WithCourse and WithMentor link it to the dataset's course and mentor
type DemoSection struct {
	Capacity    int
	Description string
	WithCourse  bool
	WithMentor  bool
}

// DefaultDataset returns the demo data: one mentored section, one section
// without a course or mentor, and a withdrawn student.
func DefaultDataset() Dataset {
	courseDesc := "Structure and Interpretation of Computer Programs"
	return Dataset{
		Mentor: appModels.User{Username: MarkerUsername, Email: "mentor@example.edu", FirstName: "Ada", LastName: "Lovelace"},
		Course: appModels.Course{Name: "CS 61A", Description: &courseDesc},
		Sections: []DemoSection{
			{Capacity: 6, Description: "Mondays 4-5pm, Soda 310", WithCourse: true, WithMentor: true},
			{Capacity: 4, Description: "Unassigned overflow section"},
		},
		Students: []DemoStudent{
			{User: appModels.User{Username: "grace", Email: "grace@example.edu", FirstName: "Grace", LastName: "Hopper"}, SectionIndex: 0, Active: true},
			{User: appModels.User{Username: "alan", Email: "alan@example.edu", FirstName: "Alan", LastName: "Turing"}, SectionIndex: 0, Active: true},
			{User: appModels.User{Username: "edsger", Email: "edsger@example.edu", FirstName: "Edsger", LastName: "Dijkstra"}, SectionIndex: 0, Active: false},
			{User: appModels.User{Username: "barbara", Email: "barbara@example.edu", FirstName: "Barbara", LastName: "Liskov"}, SectionIndex: 1, Active: true},
		},
		Sessions: []string{"2024-01-10", "2024-01-11"},
		Attendance: map[string][]appModels.Presence{
			"grace":  {appModels.PresenceUnexcusedAbsence, appModels.PresencePresent},
			"alan":   {appModels.PresencePresent, appModels.PresenceExcusedAbsence},
			"edsger": {appModels.PresencePresent},
		},
	}
}

// CreateDefaultData inserts DefaultDataset in a single transaction unless it
// is already present.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(database.Pool)

	lgr.Info().Msg("Checking/Creating demo data...")
	_, err := repos.UserRepository.GetByUsername(ctx, MarkerUsername)
	switch {
	case err == nil:
		lgr.Info().Str("username", MarkerUsername).Msg("Demo data already present, skipping")
		return nil
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return fmt.Errorf("checking demo data: %w", err)
	}

	data := DefaultDataset()
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return Insert(ctx, repos.WithTx(tx), data)
	})
	if err != nil {
		return fmt.Errorf("creating demo data: %w", err)
	}

	lgr.Info().
		Int("sections", len(data.Sections)).
		Int("students", len(data.Students)).
		Msg("Demo data created")
	return nil
}

// Insert writes data through repos
func Insert(ctx context.Context, repos *appRepos.Repositories, data Dataset) error {
	mentorUser := data.Mentor
	if err := repos.UserRepository.Create(ctx, &mentorUser); err != nil {
		return fmt.Errorf("mentor user: %w", err)
	}
	mentor := &appModels.Mentor{UserID: mentorUser.ID}
	if err := repos.MentorRepository.Create(ctx, mentor); err != nil {
		return fmt.Errorf("mentor: %w", err)
	}

	course := data.Course
	if err := repos.CourseRepository.Create(ctx, &course); err != nil {
		return fmt.Errorf("course: %w", err)
	}

	sectionIDs := make([]int64, 0, len(data.Sections))
	for i, ds := range data.Sections {
		section := &appModels.Section{Capacity: ds.Capacity, Description: ds.Description}
		if ds.WithCourse {
			section.CourseID = &course.ID
		}
		if ds.WithMentor {
			section.MentorID = &mentor.ID
		}
		if err := repos.SectionRepository.Create(ctx, section); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		sectionIDs = append(sectionIDs, section.ID)
	}

	for _, ds := range data.Students {
		if ds.SectionIndex < 0 || ds.SectionIndex >= len(sectionIDs) {
			return fmt.Errorf("student %s: no section at index %d", ds.User.Username, ds.SectionIndex)
		}

		user := ds.User
		if err := repos.UserRepository.Create(ctx, &user); err != nil {
			return fmt.Errorf("student user %s: %w", user.Username, err)
		}
		student := &appModels.Student{UserID: user.ID, SectionID: sectionIDs[ds.SectionIndex], Active: ds.Active}
		if err := repos.StudentRepository.Create(ctx, student); err != nil {
			return fmt.Errorf("student %s: %w", user.Username, err)
		}

		for i, presence := range data.Attendance[user.Username] {
			if i >= len(data.Sessions) {
				break
			}
			date, err := helpers.ParseDate(data.Sessions[i])
			if err != nil {
				return fmt.Errorf("session date: %w", err)
			}
			record := &appModels.Attendance{StudentID: student.ID, Date: date, Presence: presence}
			if err := repos.AttendanceRepository.Create(ctx, record); err != nil {
				return fmt.Errorf("attendance %s %s: %w", user.Username, data.Sessions[i], err)
			}
		}
	}
	return nil
}
