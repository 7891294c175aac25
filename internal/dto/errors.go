package dto

import "time"

// TimestampLayout formats error timestamps without zone, e.g. 2025-11-13T10:30:00.
const TimestampLayout = "2006-01-02T15:04:05"

// ErrorResponse is returned for not-found, conflict and malformed requests.
type ErrorResponse struct {
	Message   string `json:"mensaje"`
	Timestamp string `json:"timestamp"`
}

// ValidationErrorResponse carries one message per invalid field.
type ValidationErrorResponse struct {
	Errors    map[string]string `json:"errores"`
	Timestamp string            `json:"timestamp"`
}

// NewErrorResponse stamps msg with the current local time.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Message: msg, Timestamp: time.Now().Format(TimestampLayout)}
}

// NewValidationErrorResponse stamps errs with the current local time.
func NewValidationErrorResponse(errs map[string]string) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: errs, Timestamp: time.Now().Format(TimestampLayout)}
}
