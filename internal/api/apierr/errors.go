package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidFormat        = "INVALID_FORMAT"
	CodeMissingValue         = "MISSING_VALUE"
	CodeInvalidRecord        = "INVALID_RECORD"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeUsernameExists       = "USERNAME_EXISTS"
	CodePasswordReuse        = "PASSWORD_REUSE"
	CodeDoctorNotFound       = "DOCTOR_NOT_FOUND"
	CodePatientNotFound      = "PATIENT_NOT_FOUND"
	CodePatientInCare        = "PATIENT_IN_CARE"
	CodeAppointmentNotFound  = "APPOINTMENT_NOT_FOUND"
	CodeAppointmentCancelled = "APPOINTMENT_CANCELLED"
	CodeAppointmentInPast    = "APPOINTMENT_IN_PAST"
	CodeQueueEmpty           = "QUEUE_EMPTY"
	CodeAlreadyQueued        = "ALREADY_QUEUED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Unreadable stored digests are a server fault, not a bad password
	case errors.Is(err, auth.ErrCorruptCredential):
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}

	// Map credential errors
	case errors.Is(err, credential.ErrMissingValue):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingValue, err.Error()}}
	case errors.Is(err, credential.ErrInvalidFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidFormat, "Password must be 6 to 12 letters or digits"}}

	// Map model errors
	case errors.Is(err, model.ErrInvalidRecord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRecord, err.Error()}}
	case errors.Is(err, model.ErrDoctorNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDoctorNotFound, "Doctor not found"}}
	case errors.Is(err, model.ErrPatientNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePatientNotFound, "Patient not found"}}
	case errors.Is(err, model.ErrPatientInCare):
		return &httpError{http.StatusConflict, APIError{CodePatientInCare, "Patient is queued or has scheduled appointments"}}
	case errors.Is(err, model.ErrAppointmentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAppointmentNotFound, "Appointment not found"}}
	case errors.Is(err, model.ErrAppointmentCancelled):
		return &httpError{http.StatusConflict, APIError{CodeAppointmentCancelled, "Appointment is already cancelled"}}
	case errors.Is(err, model.ErrAppointmentInPast):
		return &httpError{http.StatusBadRequest, APIError{CodeAppointmentInPast, "Appointment must start in the future"}}
	case errors.Is(err, model.ErrQueueEmpty):
		return &httpError{http.StatusNotFound, APIError{CodeQueueEmpty, "Queue is empty"}}
	case errors.Is(err, model.ErrAlreadyQueued):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyQueued, "Patient is already queued"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrPasswordReuse):
		return &httpError{http.StatusBadRequest, APIError{CodePasswordReuse, "New password must differ from the current one"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewMissingValueError reports a required field absent from the request
func NewMissingValueError(field string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeMissingValue, field + " is required"}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
