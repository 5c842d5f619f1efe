package dto

import (
	"time"

	"github.com/yigit/coursereg/internal/app/models"
)

// CourseResponse is the wire shape of a course
type CourseResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Distributed Systems"`
	StartTime time.Time `json:"startTime" example:"2026-09-01T09:00:00Z"`
	EndTime   time.Time `json:"endTime" example:"2026-12-20T17:00:00Z"`
	Price     int64     `json:"price" example:"1000"`
}

// NewCourseResponse converts a course model
func NewCourseResponse(c models.Course) CourseResponse {
	return CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Price:     c.Price,
	}
}

// NewCourseResponses converts a slice of courses, keeping order. Never returns nil.
func NewCourseResponses(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
