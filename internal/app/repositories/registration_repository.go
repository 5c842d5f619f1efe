package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/dberrors"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

// Constraint names declared in the init migration
const (
	registrationUniqueConstraint    = "registrations_student_course_key"
	registrationStudentFKConstraint = "registrations_student_id_fkey"
	registrationCourseFKConstraint  = "registrations_course_id_fkey"
)

// RegistrationRepository handles registration database operations
type RegistrationRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db Querier) *RegistrationRepository {
	return &RegistrationRepository{db: db, sb: psql}
}

func (r *RegistrationRepository) selectWithCourse() squirrel.SelectBuilder {
	return r.sb.Select(
		"r.id", "r.student_id", "r.course_id", "r.price", "r.registered_date",
		"c.id", "c.name", "c.start_time", "c.end_time", "c.price",
	).
		From("registrations r").
		Join("courses c ON c.id = r.course_id")
}

// ListByStudentID retrieves the student's registrations ordered by id, courses joined in
func (r *RegistrationRepository) ListByStudentID(ctx context.Context, studentID int64) ([]models.Registration, error) {
	sql, args, err := r.selectWithCourse().
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list registrations query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// ListStartingAfter retrieves registrations whose course starts strictly after the given
// instant, soonest first
func (r *RegistrationRepository) ListStartingAfter(ctx context.Context, studentID int64, after time.Time) ([]models.Registration, error) {
	sql, args, err := r.selectWithCourse().
		Where(squirrel.Eq{"r.student_id": studentID}).
		Where(squirrel.Gt{"c.start_time": after}).
		OrderBy("c.start_time ASC", "r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upcoming registrations query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *RegistrationRepository) query(ctx context.Context, sql string, args ...any) ([]models.Registration, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing registrations query")
		return nil, fmt.Errorf("error querying registrations: %w", err)
	}

	regs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Registration, error) {
		var reg models.Registration
		var course models.Course
		err := row.Scan(
			&reg.ID, &reg.StudentID, &reg.CourseID, &reg.Price, &reg.RegisteredDate,
			&course.ID, &course.Name, &course.StartTime, &course.EndTime, &course.Price,
		)
		reg.Course = &course
		return reg, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning registration rows: %w", err)
	}
	return regs, nil
}

// Create inserts a registration. A second registration for the same student and
// course is rejected by the unique constraint and reported as apperrors.ErrAlreadyRegistered.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	sql, args, err := r.sb.Insert("registrations").
		Columns("student_id", "course_id", "price", "registered_date").
		Values(reg.StudentID, reg.CourseID, reg.Price, reg.RegisteredDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create registration query: %w", err)
	}

	saved := *reg
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&saved.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, registrationUniqueConstraint):
			return nil, apperrors.ErrAlreadyRegistered
		case dberrors.IsForeignKeyConstraintError(err, registrationStudentFKConstraint):
			return nil, apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyConstraintError(err, registrationCourseFKConstraint):
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).
			Int64("studentID", reg.StudentID).
			Int64("courseID", reg.CourseID).
			Msg("Error executing create registration query")
		return nil, fmt.Errorf("error creating registration: %w", err)
	}

	return &saved, nil
}

// Delete removes a registration by id
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete registration query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("registrationID", id).Msg("Error executing delete registration query")
		return fmt.Errorf("error deleting registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}
