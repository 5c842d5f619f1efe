package services

//go:generate mockgen -source=registration_service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/metrics"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/clock"
	"github.com/yigit/coursereg/internal/pkg/events"
	"github.com/yigit/coursereg/internal/pkg/lock"
)

const tracerName = "github.com/yigit/coursereg/internal/app/services"

// Gateway is the persistence the registration service reads and writes through.
// Lookups return the matching apperrors not-found value when nothing exists.
type Gateway interface {
	FindStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	FindCourseByID(ctx context.Context, id int64) (*models.Course, error)
	// FindRegistrationsByStudentID returns registrations in a stable order with Course populated
	FindRegistrationsByStudentID(ctx context.Context, studentID int64) ([]models.Registration, error)
	FindUpcomingRegistrations(ctx context.Context, studentID int64, after time.Time) ([]models.Registration, error)
	SaveRegistration(ctx context.Context, reg *models.Registration) (*models.Registration, error)
	DeleteRegistration(ctx context.Context, reg *models.Registration) error
}

// RegistrationService defines the enrollment operations
type RegistrationService interface {
	// Enroll registers the student for the course and returns every course the
	// student is now registered for, the new one last.
	Enroll(ctx context.Context, studentEmail string, courseID int64) ([]models.Course, error)
	// Withdraw removes the student's registration for a course that has not started.
	Withdraw(ctx context.Context, studentEmail string, courseID int64) error
	// Upcoming lists the student's registrations whose course has not started, soonest first.
	Upcoming(ctx context.Context, studentEmail string) ([]models.Registration, error)
}

// Option configures the registration service
type Option func(*registrationServiceImpl)

// WithClock sets the time source
func WithClock(c clock.Clock) Option {
	return func(s *registrationServiceImpl) { s.clock = c }
}

// WithLocker sets the per-student lock
func WithLocker(l lock.Locker) Option {
	return func(s *registrationServiceImpl) { s.locker = l }
}

// WithPublisher sets the event publisher
func WithPublisher(p events.Publisher) Option {
	return func(s *registrationServiceImpl) { s.publisher = p }
}

// WithMetrics sets the outcome counters
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *registrationServiceImpl) { s.metrics = m }
}

// WithTracer sets the tracer spans are started on
func WithTracer(t trace.Tracer) Option {
	return func(s *registrationServiceImpl) { s.tracer = t }
}

// WithPricing overrides the discount tier
func WithPricing(p Pricing) Option {
	return func(s *registrationServiceImpl) { s.pricing = p }
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *registrationServiceImpl) { s.log = l }
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	gateway   Gateway
	clock     clock.Clock
	locker    lock.Locker
	publisher events.Publisher
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	pricing   Pricing
	log       zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(gateway Gateway, opts ...Option) RegistrationService {
	s := &registrationServiceImpl{
		gateway:   gateway,
		clock:     clock.System(),
		locker:    lock.NewMemoryLocker(),
		publisher: events.NoopPublisher{},
		tracer:    otel.Tracer(tracerName),
		pricing:   DefaultPricing(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enroll implements RegistrationService
func (s *registrationServiceImpl) Enroll(ctx context.Context, studentEmail string, courseID int64) (courses []models.Course, err error) {
	ctx, span := s.startSpan(ctx, "registration.enroll", studentEmail, &courseID)
	defer func() {
		s.metrics.ObserveEnrollment(err)
		s.finish(span, "enroll", studentEmail, courseID, err)
	}()

	student, course, err := s.resolve(ctx, studentEmail, courseID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, studentLockKey(student.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock student %d: %w", student.ID, err)
	}
	defer unlock()

	existing, err := s.gateway.FindRegistrationsByStudentID(ctx, student.ID)
	if err != nil {
		return nil, passthrough(err, "failed to load registrations")
	}

	now := s.clock.Now()
	if course.HasStarted(now) {
		return nil, apperrors.ErrRegisterCourseStarted
	}
	for _, reg := range existing {
		if reg.CourseID == course.ID {
			return nil, apperrors.ErrAlreadyRegistered
		}
	}

	// Everything that can fail runs before the save so a failed call persists nothing.
	courses = make([]models.Course, 0, len(existing)+1)
	for _, reg := range existing {
		c, err := s.courseOf(ctx, reg)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}

	price := s.pricing.Charge(course.Price, len(existing))
	saved, err := s.gateway.SaveRegistration(ctx, models.NewRegistration(student, course, price, now))
	if err != nil {
		return nil, passthrough(err, "failed to save registration")
	}
	unlock()

	if s.pricing.Discounted(len(existing)) {
		s.metrics.IncrementDiscount()
	}
	span.SetAttributes(attribute.Int64("registration.price", price))

	s.publish(ctx, events.NewRegistrationEvent(events.TypeRegistrationCreated,
		saved.ID, student.ID, student.Email, course.ID, price, now))

	return append(courses, *course), nil
}

// Withdraw implements RegistrationService
func (s *registrationServiceImpl) Withdraw(ctx context.Context, studentEmail string, courseID int64) (err error) {
	ctx, span := s.startSpan(ctx, "registration.withdraw", studentEmail, &courseID)
	defer func() {
		s.metrics.ObserveWithdrawal(err)
		s.finish(span, "withdraw", studentEmail, courseID, err)
	}()

	student, course, err := s.resolve(ctx, studentEmail, courseID)
	if err != nil {
		return err
	}

	unlock, err := s.locker.Lock(ctx, studentLockKey(student.ID))
	if err != nil {
		return fmt.Errorf("failed to lock student %d: %w", student.ID, err)
	}
	defer unlock()

	existing, err := s.gateway.FindRegistrationsByStudentID(ctx, student.ID)
	if err != nil {
		return passthrough(err, "failed to load registrations")
	}

	var target *models.Registration
	for i := range existing {
		if existing[i].CourseID == course.ID {
			target = &existing[i]
			break
		}
	}
	if target == nil {
		return apperrors.ErrRegistrationNotFound
	}

	now := s.clock.Now()
	if course.HasStarted(now) {
		return apperrors.ErrUnregisterCourseStarted
	}

	if err := s.gateway.DeleteRegistration(ctx, target); err != nil {
		return passthrough(err, "failed to delete registration")
	}
	unlock()

	s.publish(ctx, events.NewRegistrationEvent(events.TypeRegistrationDeleted,
		target.ID, student.ID, student.Email, course.ID, target.Price, now))
	return nil
}

// Upcoming implements RegistrationService
func (s *registrationServiceImpl) Upcoming(ctx context.Context, studentEmail string) (regs []models.Registration, err error) {
	ctx, span := s.startSpan(ctx, "registration.upcoming", studentEmail, nil)
	defer func() { s.finish(span, "upcoming", studentEmail, 0, err) }()

	student, err := s.gateway.FindStudentByEmail(ctx, studentEmail)
	if err != nil {
		return nil, passthrough(err, "failed to find student")
	}

	regs, err = s.gateway.FindUpcomingRegistrations(ctx, student.ID, s.clock.Now())
	if err != nil {
		return nil, passthrough(err, "failed to load upcoming registrations")
	}
	if regs == nil {
		regs = []models.Registration{}
	}
	span.SetAttributes(attribute.Int("registration.count", len(regs)))
	return regs, nil
}

// resolve looks up the student first, then the course
func (s *registrationServiceImpl) resolve(ctx context.Context, email string, courseID int64) (*models.Student, *models.Course, error) {
	student, err := s.gateway.FindStudentByEmail(ctx, email)
	if err != nil {
		return nil, nil, passthrough(err, "failed to find student")
	}
	course, err := s.gateway.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, nil, passthrough(err, "failed to find course")
	}
	return student, course, nil
}

// courseOf returns the registration's course, loading it when the gateway left it out
func (s *registrationServiceImpl) courseOf(ctx context.Context, reg models.Registration) (*models.Course, error) {
	if reg.Course != nil {
		return reg.Course, nil
	}
	c, err := s.gateway.FindCourseByID(ctx, reg.CourseID)
	if err != nil {
		return nil, passthrough(err, "failed to load registered course")
	}
	return c, nil
}

// publish delivers an event. The registration is already persisted, so a
// failure is only logged. Callers release the student lock first so a slow
// broker never holds it.
func (s *registrationServiceImpl) publish(ctx context.Context, event events.RegistrationEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("eventType", event.Type).
			Int64("registrationID", event.RegistrationID).
			Msg("Failed to publish registration event")
	}
}

func (s *registrationServiceImpl) startSpan(ctx context.Context, name, email string, courseID *int64) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("student.email", email)}
	if courseID != nil {
		attrs = append(attrs, attribute.Int64("course.id", *courseID))
	}
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// finish logs the outcome and closes the span
func (s *registrationServiceImpl) finish(span trace.Span, op, email string, courseID int64, err error) {
	defer span.End()
	outcome := metrics.Outcome(err)
	span.SetAttributes(attribute.String("registration.outcome", outcome))

	event := s.log.Info()
	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case isBusinessError(err):
		event = s.log.Warn().Err(err)
		span.SetStatus(codes.Error, err.Error())
	default:
		event = s.log.Error().Err(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	event = event.Str("operation", op).Str("studentEmail", email).Str("outcome", outcome)
	if courseID != 0 {
		event = event.Int64("courseID", courseID)
	}
	event.Msg("Registration operation finished")
}

func isBusinessError(err error) bool {
	_, ok := apperrors.AsRegistrationError(err)
	return ok
}

// passthrough keeps business rejections intact so their message reaches the
// client verbatim, and wraps anything else with context.
func passthrough(err error, msg string) error {
	if isBusinessError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func studentLockKey(studentID int64) string {
	return "student:" + strconv.FormatInt(studentID, 10)
}
