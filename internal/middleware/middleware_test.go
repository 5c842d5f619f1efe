package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{apperrors.ErrStudentNotFound, "Student not found"},
		{fmt.Errorf("failed to find course: %w", apperrors.ErrCourseNotFound), "Course not found"},
		{apperrors.ErrAlreadyRegistered, "Student has already registered for this course"},
		{apperrors.ErrUnregisterCourseStarted, "Cannot unregister from a course that has already started"},
		{apperrors.NewBadRequestError("courseId must be an integer"), "courseId must be an integer"},
		{errors.New("pool closed"), "pool closed"},
	}
	for _, tc := range cases {
		status, msg := StatusFor(tc.err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, tc.want, msg)
	}
}

func TestHandleAPIError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.ErrRegistrationNotFound)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Registration not found"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestIsExpected(t *testing.T) {
	assert.True(t, isExpected(fmt.Errorf("enroll: %w", apperrors.ErrAlreadyRegistered)))
	assert.True(t, isExpected(apperrors.NewValidationError("studentEmail is required")))
	assert.True(t, isExpected(apperrors.NewBadRequestError("courseId must be an integer")))
	assert.False(t, isExpected(errors.New("connection refused")))
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		Email    string `form:"studentEmail" validate:"required"`
		CourseID *int64 `uri:"courseId" validate:"required"`
	}
	id := int64(0)

	err := ValidateStruct(request{CourseID: &id})
	require.Error(t, err)
	assert.Equal(t, "studentEmail is required", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = ValidateStruct(request{Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, "courseId is required", err.Error())

	assert.NoError(t, ValidateStruct(request{Email: "ada@example.com", CourseID: &id}))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["requestID"])
	assert.Equal(t, "/ping", entry["path"])
	assert.Equal(t, float64(200), entry["status"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader), "a fresh id is generated when absent")
}
