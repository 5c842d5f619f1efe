package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

var courseColumns = []string{"id", "name", "start_time", "end_time", "price"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{db: db, sb: psql}
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Name, &course.StartTime, &course.EndTime, &course.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// Create inserts a course and returns its id. Used by seeding and tests.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "start_time", "end_time", "price").
		Values(course.Name, course.StartTime, course.EndTime, course.Price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}
