package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/coursereg/internal/app/models"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the repositories need
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds statements with PostgreSQL placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	CourseRepository       *CourseRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		CourseRepository:       NewCourseRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}

// Gateway exposes the repositories as the single persistence dependency of
// the registration service.
type Gateway struct {
	repos *Repositories
}

// NewGateway wraps repos
func NewGateway(repos *Repositories) *Gateway {
	return &Gateway{repos: repos}
}

// FindStudentByEmail returns apperrors.ErrStudentNotFound when absent
func (g *Gateway) FindStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	return g.repos.StudentRepository.GetByEmail(ctx, email)
}

// FindCourseByID returns apperrors.ErrCourseNotFound when absent
func (g *Gateway) FindCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return g.repos.CourseRepository.GetByID(ctx, id)
}

// FindRegistrationsByStudentID lists the student's registrations by id
func (g *Gateway) FindRegistrationsByStudentID(ctx context.Context, studentID int64) ([]models.Registration, error) {
	return g.repos.RegistrationRepository.ListByStudentID(ctx, studentID)
}

// FindUpcomingRegistrations lists registrations whose course starts after the given instant
func (g *Gateway) FindUpcomingRegistrations(ctx context.Context, studentID int64, after time.Time) ([]models.Registration, error) {
	return g.repos.RegistrationRepository.ListStartingAfter(ctx, studentID, after)
}

// SaveRegistration inserts reg and returns it with its id
func (g *Gateway) SaveRegistration(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	return g.repos.RegistrationRepository.Create(ctx, reg)
}

// DeleteRegistration removes reg
func (g *Gateway) DeleteRegistration(ctx context.Context, reg *models.Registration) error {
	return g.repos.RegistrationRepository.Delete(ctx, reg.ID)
}
