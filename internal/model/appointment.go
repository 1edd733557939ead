package model

import "time"

// AppointmentID uniquely identifies an appointment
type AppointmentID string

// AppointmentStatus tracks whether an appointment still stands
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment books a patient with a doctor at a given time
type Appointment struct {
	ID        AppointmentID
	PatientID PatientID
	DoctorID  DoctorID
	StartsAt  time.Time
	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentCancelled
}
