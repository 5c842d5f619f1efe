package dto

// ErrorResponse is the body of every failed registration request
type ErrorResponse struct {
	Error string `json:"error" example:"Student not found"`
}

// NewErrorResponse wraps a message in an ErrorResponse
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
