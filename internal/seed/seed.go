// Package seed inserts development students and courses.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/db"
)

// Transactor runs fn inside a database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DefaultStudents returns the development students
func DefaultStudents() []appModels.Student {
	return []appModels.Student{
		{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
		{Email: "alan@example.com", FirstName: "Alan", LastName: "Turing"},
		{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
	}
}

// DefaultCourses returns the development courses relative to now. The last one
// has already started so both rejection paths can be tried by hand.
func DefaultCourses(now time.Time) []appModels.Course {
	day := 24 * time.Hour
	now = now.UTC().Truncate(time.Hour)
	return []appModels.Course{
		{ID: 1, Name: "Algorithms", StartTime: now.Add(30 * day), EndTime: now.Add(120 * day), Price: 1000},
		{ID: 2, Name: "Distributed Systems", StartTime: now.Add(45 * day), EndTime: now.Add(135 * day), Price: 3000},
		{ID: 3, Name: "Compilers", StartTime: now.Add(60 * day), EndTime: now.Add(150 * day), Price: 2000},
		{ID: 4, Name: "Operating Systems", StartTime: now.Add(-7 * day), EndTime: now.Add(83 * day), Price: 1500},
	}
}

// CreateDefaultData inserts the default students and courses if they don't exist.
// Everything runs in one transaction so a partial seed is never left behind.
func CreateDefaultData(ctx context.Context, database Transactor, now time.Time, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Students/Courses)...")

	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, student := range DefaultStudents() {
			sql, args, err := psql.Insert("students").
				Columns("email", "first_name", "last_name").
				Values(student.Email, student.FirstName, student.LastName).
				Suffix("ON CONFLICT (email) DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build seed student query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("error seeding student %s: %w", student.Email, err)
			}
		}

		for _, course := range DefaultCourses(now) {
			sql, args, err := psql.Insert("courses").
				Columns("id", "name", "start_time", "end_time", "price").
				Values(course.ID, course.Name, course.StartTime, course.EndTime, course.Price).
				Suffix("ON CONFLICT (id) DO NOTHING").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build seed course query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("error seeding course %q: %w", course.Name, err)
			}
		}

		// Explicit ids bypass the sequence; move it past them.
		if _, err := tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('courses', 'id'), GREATEST((SELECT MAX(id) FROM courses), 1))`); err != nil {
			return fmt.Errorf("error advancing course id sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default data")
		return err
	}

	lgr.Info().Msg("Default data ready")
	return nil
}
