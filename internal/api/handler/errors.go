package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clinicio/clinicio/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeInvalidFormat        = apierr.CodeInvalidFormat
	CodeMissingValue         = apierr.CodeMissingValue
	CodeInvalidRecord        = apierr.CodeInvalidRecord
	CodeUnauthorized         = apierr.CodeUnauthorized
	CodeInvalidCredentials   = apierr.CodeInvalidCredentials
	CodeUsernameExists       = apierr.CodeUsernameExists
	CodePasswordReuse        = apierr.CodePasswordReuse
	CodeDoctorNotFound       = apierr.CodeDoctorNotFound
	CodePatientNotFound      = apierr.CodePatientNotFound
	CodeAppointmentNotFound  = apierr.CodeAppointmentNotFound
	CodeAppointmentCancelled = apierr.CodeAppointmentCancelled
	CodeAppointmentInPast    = apierr.CodeAppointmentInPast
	CodeQueueEmpty           = apierr.CodeQueueEmpty
	CodeAlreadyQueued        = apierr.CodeAlreadyQueued
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewMissingValueError creates a missing value error for field
func NewMissingValueError(field string) error {
	return apierr.NewMissingValueError(field)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

// decode reads a JSON request body into v
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return NewInvalidRequestError("invalid request body")
	}
	return nil
}

// required dereferences a field that must be present in the request.
// Present-but-empty is left for the service to judge.
func required(field string, v *string) (string, error) {
	if v == nil {
		return "", NewMissingValueError(field)
	}
	return *v, nil
}
