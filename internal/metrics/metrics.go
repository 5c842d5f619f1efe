// Package metrics exposes Prometheus counters for registration outcomes.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

// Outcome label values
const (
	OutcomeSuccess              = "success"
	OutcomeStudentNotFound      = "student_not_found"
	OutcomeCourseNotFound       = "course_not_found"
	OutcomeRegistrationNotFound = "registration_not_found"
	OutcomeAlreadyStarted       = "already_started"
	OutcomeAlreadyRegistered    = "already_registered"
	OutcomeError                = "error"
)

// Metrics tracks enrollment and withdrawal results
type Metrics struct {
	Enrollments *prometheus.CounterVec
	Withdrawals *prometheus.CounterVec
	Discounts   prometheus.Counter
}

// New registers every registration metric on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Enrollments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursereg_enrollments_total",
			Help: "Enrollment attempts by outcome",
		}, []string{"outcome"}),
		Withdrawals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursereg_withdrawals_total",
			Help: "Withdrawal attempts by outcome",
		}, []string{"outcome"}),
		Discounts: factory.NewCounter(prometheus.CounterOpts{
			Name: "coursereg_discounted_enrollments_total",
			Help: "Enrollments charged at the discounted price",
		}),
	}
}

// ObserveEnrollment records the result of an enroll call. Nil-safe.
func (m *Metrics) ObserveEnrollment(err error) {
	if m == nil {
		return
	}
	m.Enrollments.WithLabelValues(Outcome(err)).Inc()
}

// ObserveWithdrawal records the result of a withdraw call. Nil-safe.
func (m *Metrics) ObserveWithdrawal(err error) {
	if m == nil {
		return
	}
	m.Withdrawals.WithLabelValues(Outcome(err)).Inc()
}

// IncrementDiscount records a discounted enrollment. Nil-safe.
func (m *Metrics) IncrementDiscount() {
	if m == nil {
		return
	}
	m.Discounts.Inc()
}

// Outcome maps an operation error to its label value
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return OutcomeStudentNotFound
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return OutcomeCourseNotFound
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		return OutcomeRegistrationNotFound
	case errors.Is(err, apperrors.ErrRegisterCourseStarted):
		return OutcomeAlreadyStarted
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return OutcomeAlreadyRegistered
	default:
		return OutcomeError
	}
}
