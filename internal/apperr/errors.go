package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain failure with a stable machine-readable code.
// Handlers map Status to the HTTP response; Code is part of the API contract.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// Baby
	ErrBabyNotFound = &Error{Code: "BABY_001", Message: "baby not found", Status: http.StatusNotFound}

	// Schedule
	ErrScheduleNotFound  = &Error{Code: "SCHEDULE_001", Message: "schedule not found", Status: http.StatusNotFound}
	ErrInvalidWakeTime   = &Error{Code: "SCHEDULE_002", Message: "invalid wake-up time", Status: http.StatusBadRequest}
	ErrTemplateNotFound  = &Error{Code: "SCHEDULE_003", Message: "no schedule template for this age", Status: http.StatusNotFound}
	ErrGuidelineNotFound = &Error{Code: "SCHEDULE_004", Message: "no sleep guideline for this age", Status: http.StatusNotFound}
	ErrItemNotFound      = &Error{Code: "SCHEDULE_005", Message: "schedule item not found", Status: http.StatusNotFound}

	// Auth
	ErrUnauthorized = &Error{Code: "AUTH_001", Message: "authentication required", Status: http.StatusUnauthorized}
	ErrForbidden    = &Error{Code: "AUTH_002", Message: "access denied", Status: http.StatusForbidden}
	ErrInvalidToken = &Error{Code: "AUTH_003", Message: "invalid token", Status: http.StatusUnauthorized}

	// Common
	ErrInvalidInput = &Error{Code: "COMMON_001", Message: "invalid input", Status: http.StatusBadRequest}
	ErrInternal     = &Error{Code: "COMMON_002", Message: "internal server error", Status: http.StatusInternalServerError}
)

// WithMessage returns a copy of e carrying a more specific message.
// The code and status are preserved so clients can still match on them.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Code: e.Code, Message: msg, Status: e.Status}
}

// From extracts the domain error from err, or wraps it as an internal error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal
}
