package dto

import (
	"time"

	"github.com/yigit/coursereg/internal/app/models"
)

// RegistrationResponse is the wire shape of an upcoming registration
type RegistrationResponse struct {
	ID             int64          `json:"id" example:"12"`
	Course         CourseResponse `json:"course"`
	Price          int64          `json:"price" example:"750"`
	RegisteredDate time.Time      `json:"registeredDate" example:"2026-08-15T10:30:00Z"`
}

// NewRegistrationResponses converts registrations, keeping order. Never returns nil.
func NewRegistrationResponses(regs []models.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp := RegistrationResponse{
			ID:             r.ID,
			Price:          r.Price,
			RegisteredDate: r.RegisteredDate,
		}
		if r.Course != nil {
			resp.Course = NewCourseResponse(*r.Course)
		}
		out = append(out, resp)
	}
	return out
}
