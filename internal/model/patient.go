package model

import "time"

// PatientID uniquely identifies a patient
type PatientID string

// Patient is a person registered with the clinic
type Patient struct {
	ID PatientID
	Person
	CreatedAt time.Time
	UpdatedAt time.Time
}
