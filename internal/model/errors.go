package model

import "errors"

// Common errors used across the application
var (
	// Record errors
	ErrInvalidRecord = errors.New("invalid record")

	// Doctor errors
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrUsernameTaken  = errors.New("username is taken")

	// Patient errors
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientInCare   = errors.New("patient is queued or has scheduled appointments")

	// Appointment errors
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentInPast    = errors.New("appointment must start in the future")

	// Queue errors
	ErrQueueEmpty    = errors.New("queue is empty")
	ErrAlreadyQueued = errors.New("patient is already queued")
)
