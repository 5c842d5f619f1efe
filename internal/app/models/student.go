package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`                     // Unique identifier for the student record
	Email     string `json:"email" db:"email" example:"ada@example.com"` // Unique email, used as the lookup key
	FirstName string `json:"firstName" db:"first_name" example:"Ada"`    // Given name
	LastName  string `json:"lastName" db:"last_name" example:"Lovelace"` // Family name
}
