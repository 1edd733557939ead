package request

import "time"

// Credential fields are pointers so an absent field can be told apart from
// an empty one.

// CheckCredentialRequest is the request body for checking a password
type CheckCredentialRequest struct {
	Password *string `json:"password"`
}

// RegisterDoctorRequest is the request body for registering a doctor
type RegisterDoctorRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone,omitempty"`
	Email    string  `json:"email,omitempty"`
	Address  string  `json:"address,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// ChangePasswordRequest is the request body for changing a password
type ChangePasswordRequest struct {
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

// AddPatientRequest is the request body for adding a patient
type AddPatientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ScheduleAppointmentRequest is the request body for booking an appointment.
// DoctorID defaults to the authenticated doctor.
type ScheduleAppointmentRequest struct {
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
}

// JoinQueueRequest is the request body for queueing a walk-in patient
type JoinQueueRequest struct {
	PatientID string `json:"patient_id"`
}
