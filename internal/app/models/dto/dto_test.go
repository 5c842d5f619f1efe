package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursereg/internal/app/models"
)

func TestCourseResponseJSON(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	body, err := json.Marshal(NewCourseResponses([]models.Course{
		{ID: 1, Name: "Compilers", StartTime: start, EndTime: start.Add(time.Hour), Price: 1000},
	}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":1,"name":"Compilers","startTime":"2026-09-01T09:00:00Z","endTime":"2026-09-01T10:00:00Z","price":1000}]`,
		string(body))
}

func TestEmptyConversionsEncodeAsArrays(t *testing.T) {
	body, err := json.Marshal(NewCourseResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	body, err = json.Marshal(NewRegistrationResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestRegistrationResponses(t *testing.T) {
	course := &models.Course{ID: 4, Name: "Databases", Price: 3000}
	out := NewRegistrationResponses([]models.Registration{{ID: 7, CourseID: 4, Price: 2250, Course: course}})
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].ID)
	assert.Equal(t, int64(2250), out[0].Price)
	assert.Equal(t, "Databases", out[0].Course.Name)
}

func TestErrorAndMessageShapes(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse("Course not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Course not found"}`, string(body))

	body, err = json.Marshal(MessageResponse{Message: UnregisteredMessage})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Unregistered successfully"}`, string(body))
}
