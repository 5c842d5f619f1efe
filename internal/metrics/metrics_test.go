package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, OutcomeSuccess},
		{apperrors.ErrStudentNotFound, OutcomeStudentNotFound},
		{fmt.Errorf("wrapped: %w", apperrors.ErrCourseNotFound), OutcomeCourseNotFound},
		{apperrors.ErrRegistrationNotFound, OutcomeRegistrationNotFound},
		{apperrors.ErrRegisterCourseStarted, OutcomeAlreadyStarted},
		{apperrors.ErrUnregisterCourseStarted, OutcomeAlreadyStarted},
		{apperrors.ErrAlreadyRegistered, OutcomeAlreadyRegistered},
		{errors.New("connection reset"), OutcomeError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Outcome(tc.err), "err=%v", tc.err)
	}
}

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveEnrollment(nil)
	m.ObserveEnrollment(nil)
	m.ObserveEnrollment(apperrors.ErrAlreadyRegistered)
	m.ObserveWithdrawal(apperrors.ErrRegistrationNotFound)
	m.IncrementDiscount()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Enrollments.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Enrollments.WithLabelValues(OutcomeAlreadyRegistered)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Withdrawals.WithLabelValues(OutcomeRegistrationNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Discounts))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveEnrollment(nil)
		m.ObserveWithdrawal(errors.New("x"))
		m.IncrementDiscount()
	})
}
