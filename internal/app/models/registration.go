package models

import "time"

// Registration links a student to a course at the price charged when it was created.
// It is never updated: enroll creates it and withdraw deletes it.
type Registration struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	CourseID       int64     `json:"courseId" db:"course_id"`
	Price          int64     `json:"price" db:"price"`
	RegisteredDate time.Time `json:"registeredDate" db:"registered_date"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

// NewRegistration builds an unsaved registration for student in course.
func NewRegistration(student *Student, course *Course, price int64, at time.Time) *Registration {
	return &Registration{
		StudentID:      student.ID,
		CourseID:       course.ID,
		Price:          price,
		RegisteredDate: at,
		Course:         course,
	}
}
