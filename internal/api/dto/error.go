package dto

// Error is the standard error response. Every failure carries a short
// human-readable message; no structured error codes beyond the HTTP status.
type Error struct {
	Message string `json:"message" example:"error message"`
}
