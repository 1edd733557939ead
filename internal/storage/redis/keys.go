package redis

import (
	"fmt"

	"github.com/clinicio/clinicio/internal/model"
)

// Key prefix for all clinic data
const keyPrefix = "clinicio"

// doctorKey returns the Redis key for a Doctor
func doctorKey(id model.DoctorID) string {
	return fmt.Sprintf("%s:doctor:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> doctor_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// doctorsIndexKey returns the Redis key for the SET of all doctor IDs
func doctorsIndexKey() string {
	return fmt.Sprintf("%s:idx:doctors", keyPrefix)
}

// patientKey returns the Redis key for a Patient
func patientKey(id model.PatientID) string {
	return fmt.Sprintf("%s:patient:%s", keyPrefix, id)
}

// patientsIndexKey returns the Redis key for the SET of all patient IDs
func patientsIndexKey() string {
	return fmt.Sprintf("%s:idx:patients", keyPrefix)
}

// appointmentKey returns the Redis key for an Appointment
func appointmentKey(id model.AppointmentID) string {
	return fmt.Sprintf("%s:appointment:%s", keyPrefix, id)
}

// appointmentsIndexKey returns the Redis key for the SET of all appointment IDs
func appointmentsIndexKey() string {
	return fmt.Sprintf("%s:idx:appointments", keyPrefix)
}

// queueKey returns the Redis key for the walk-in queue LIST
func queueKey() string {
	return fmt.Sprintf("%s:queue", keyPrefix)
}
