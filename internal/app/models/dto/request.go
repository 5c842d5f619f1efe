package dto

// RegisterRequest holds the query parameters of a registration request
type RegisterRequest struct {
	StudentEmail string `form:"studentEmail" validate:"required"`
	CourseID     *int64 `form:"courseId" validate:"required"`
}

// UnregisterRequest holds the path parameters of an unregistration request
type UnregisterRequest struct {
	CourseID int64  `uri:"courseId"`
	Email    string `uri:"email" validate:"required"`
}

// UpcomingRequest holds the path parameters of the upcoming registrations lookup
type UpcomingRequest struct {
	Email string `uri:"email" validate:"required"`
}
