package models

import "time"

// Course represents a course students can register for.
// Price is expressed in the smallest currency unit.
type Course struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Distributed Systems"`
	StartTime time.Time `json:"startTime" db:"start_time" example:"2026-09-01T09:00:00Z"`
	EndTime   time.Time `json:"endTime" db:"end_time" example:"2026-12-20T17:00:00Z"`
	Price     int64     `json:"price" db:"price" example:"1000"`
}

// HasStarted reports whether the course start time is at or before now
func (c *Course) HasStarted(now time.Time) bool {
	return !c.StartTime.After(now)
}
