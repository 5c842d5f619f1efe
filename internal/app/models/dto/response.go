package dto

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Unregistered successfully"`
}

// UnregisteredMessage is returned after a successful withdrawal
const UnregisteredMessage = "Unregistered successfully"

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
