package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/yigit/coursereg/internal/app/controllers"
	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/app/routes"
	"github.com/yigit/coursereg/internal/app/services/mocks"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// RegistrationControllerSuite exercises the HTTP surface with a mocked service.
type RegistrationControllerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockRegistrationService
	router  *gin.Engine
}

func TestRegistrationControllerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RegistrationControllerSuite))
}

func (s *RegistrationControllerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockRegistrationService(s.ctrl)
	s.router = gin.New()
	routes.SetupRouter(s.router,
		controllers.NewRegistrationController(s.service),
		controllers.NewHealthController(stubPinger{}),
		http.NotFoundHandler(),
	)
}

func (s *RegistrationControllerSuite) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func (s *RegistrationControllerSuite) TestRegisterReturnsCourses() {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	s.service.EXPECT().Enroll(gomock.Any(), "ada@example.com", int64(3)).Return([]models.Course{
		{ID: 1, Name: "Algorithms", StartTime: start, EndTime: start.Add(time.Hour), Price: 1000},
		{ID: 3, Name: "Compilers", StartTime: start, EndTime: start.Add(time.Hour), Price: 3000},
	}, nil)

	w := s.do(http.MethodPost, "/api/registrations/register?studentEmail=ada@example.com&courseId=3")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[
		{"id":1,"name":"Algorithms","startTime":"2026-09-01T09:00:00Z","endTime":"2026-09-01T10:00:00Z","price":1000},
		{"id":3,"name":"Compilers","startTime":"2026-09-01T09:00:00Z","endTime":"2026-09-01T10:00:00Z","price":3000}
	]`, w.Body.String())
}

func (s *RegistrationControllerSuite) TestRegisterBusinessErrors() {
	for _, err := range []error{
		apperrors.ErrStudentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrRegisterCourseStarted,
		apperrors.ErrAlreadyRegistered,
	} {
		s.service.EXPECT().Enroll(gomock.Any(), "ada@example.com", int64(3)).Return(nil, err)

		w := s.do(http.MethodPost, "/api/registrations/register?studentEmail=ada@example.com&courseId=3")
		s.Equal(http.StatusBadRequest, w.Code)
		s.JSONEq(`{"error":"`+err.Error()+`"}`, w.Body.String())
	}
}

func (s *RegistrationControllerSuite) TestRegisterUnexpectedErrorIsBadRequest() {
	s.service.EXPECT().Enroll(gomock.Any(), "ada@example.com", int64(3)).
		Return(nil, errors.New("failed to load registrations: connection reset"))

	w := s.do(http.MethodPost, "/api/registrations/register?studentEmail=ada@example.com&courseId=3")
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"failed to load registrations: connection reset"}`, w.Body.String())
}

func (s *RegistrationControllerSuite) TestRegisterMalformedInput() {
	cases := map[string]string{
		"/api/registrations/register?courseId=3":                              "studentEmail is required",
		"/api/registrations/register?studentEmail=ada@example.com":            "courseId is required",
		"/api/registrations/register?studentEmail=ada@example.com&courseId=x": "courseId must be an integer",
	}
	for target, want := range cases {
		w := s.do(http.MethodPost, target)
		s.Equal(http.StatusBadRequest, w.Code, target)
		s.JSONEq(`{"error":"`+want+`"}`, w.Body.String(), target)
	}
}

func (s *RegistrationControllerSuite) TestUnregister() {
	s.service.EXPECT().Withdraw(gomock.Any(), "ada@example.com", int64(5)).Return(nil)

	w := s.do(http.MethodDelete, "/api/registrations/unregister/5/ada@example.com")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"message":"Unregistered successfully"}`, w.Body.String())
}

func (s *RegistrationControllerSuite) TestUnregisterErrors() {
	for _, err := range []error{
		apperrors.ErrStudentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrRegistrationNotFound,
		apperrors.ErrUnregisterCourseStarted,
	} {
		s.service.EXPECT().Withdraw(gomock.Any(), "ada@example.com", int64(5)).Return(err)

		w := s.do(http.MethodDelete, "/api/registrations/unregister/5/ada@example.com")
		s.Equal(http.StatusBadRequest, w.Code)
		s.JSONEq(`{"error":"`+err.Error()+`"}`, w.Body.String())
	}
}

func (s *RegistrationControllerSuite) TestUnregisterNonNumericCourse() {
	w := s.do(http.MethodDelete, "/api/registrations/unregister/abc/ada@example.com")
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"courseId must be an integer"}`, w.Body.String())
}

func (s *RegistrationControllerSuite) TestUpcoming() {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	registered := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.service.EXPECT().Upcoming(gomock.Any(), "ada@example.com").Return([]models.Registration{{
		ID: 12, CourseID: 3, Price: 750, RegisteredDate: registered,
		Course: &models.Course{ID: 3, Name: "Compilers", StartTime: start, EndTime: start, Price: 1000},
	}}, nil)

	w := s.do(http.MethodGet, "/api/registrations/upcoming/ada@example.com")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"id":12,"price":750,"registeredDate":"2026-08-01T12:00:00Z",
		"course":{"id":3,"name":"Compilers","startTime":"2026-09-01T09:00:00Z","endTime":"2026-09-01T09:00:00Z","price":1000}}]`,
		w.Body.String())
}

func (s *RegistrationControllerSuite) TestUpcomingUnknownStudent() {
	s.service.EXPECT().Upcoming(gomock.Any(), "ghost@example.com").Return(nil, apperrors.ErrStudentNotFound)

	w := s.do(http.MethodGet, "/api/registrations/upcoming/ghost@example.com")
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Student not found"}`, w.Body.String())
}

func (s *RegistrationControllerSuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *RegistrationControllerSuite) TestHealthDatabaseDown() {
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewRegistrationController(s.service),
		controllers.NewHealthController(stubPinger{err: errors.New("refused")}),
		nil,
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	s.Equal(http.StatusServiceUnavailable, w.Code)
}
