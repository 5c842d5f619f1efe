// Package events publishes registration lifecycle events for downstream
// consumers such as billing or notification services.
//
// Publishing is best effort. A registration that was committed stays
// committed even when its event cannot be delivered.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	TypeRegistrationCreated = "registration.created"
	TypeRegistrationDeleted = "registration.deleted"
)

// RegistrationEvent describes a registration being created or deleted
type RegistrationEvent struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	RegistrationID int64     `json:"registrationId"`
	StudentID      int64     `json:"studentId"`
	StudentEmail   string    `json:"studentEmail"`
	CourseID       int64     `json:"courseId"`
	Price          int64     `json:"price"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewRegistrationEvent stamps a fresh event id
func NewRegistrationEvent(eventType string, registrationID, studentID int64, email string, courseID, price int64, at time.Time) RegistrationEvent {
	return RegistrationEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		RegistrationID: registrationID,
		StudentID:      studentID,
		StudentEmail:   email,
		CourseID:       courseID,
		Price:          price,
		OccurredAt:     at.UTC(),
	}
}

// Key is the partitioning key. Events of one student stay ordered.
func (e RegistrationEvent) Key() []byte {
	return []byte(e.StudentEmail)
}

// Encode serializes the event payload
func (e RegistrationEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers registration events
type Publisher interface {
	Publish(ctx context.Context, event RegistrationEvent) error
	Close()
}

// NoopPublisher discards every event
type NoopPublisher struct{}

// Publish implements Publisher
func (NoopPublisher) Publish(context.Context, RegistrationEvent) error { return nil }

// Close implements Publisher
func (NoopPublisher) Close() {}
