package dto

import "time"

// APIResponse is the uniform success envelope. Success is always
// statusCode < 400, so callers can branch on a single boolean regardless of
// endpoint.
type APIResponse struct {
	StatusCode int          `json:"statusCode" example:"200"`
	Success    bool         `json:"success" example:"true"`
	Message    string       `json:"message" example:"Operation completed successfully"`
	Data       interface{}  `json:"data,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
	Timestamp  time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a success envelope for the given status and payload.
func NewSuccessResponse(statusCode int, data interface{}, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Success:    statusCode < 400,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now(),
	}
}
