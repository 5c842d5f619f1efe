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

// StudentRepository handles student database operations
type StudentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db, sb: psql}
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "email", "first_name", "last_name").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.Email, &student.FirstName, &student.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}

	return student, nil
}

// Create inserts a student and returns its id. Used by seeding and tests.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("email", "first_name", "last_name").
		Values(student.Email, student.FirstName, student.LastName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}
