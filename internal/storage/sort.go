package storage

import (
	"sort"

	"github.com/clinicio/clinicio/internal/model"
)

// SortPatients orders patients by registration time, then ID
func SortPatients(patients []*model.Patient) {
	sort.Slice(patients, func(i, j int) bool {
		if !patients[i].CreatedAt.Equal(patients[j].CreatedAt) {
			return patients[i].CreatedAt.Before(patients[j].CreatedAt)
		}
		return patients[i].ID < patients[j].ID
	})
}

// SortAppointments orders appointments by start time, then ID
func SortAppointments(appointments []*model.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].StartsAt.Equal(appointments[j].StartsAt) {
			return appointments[i].StartsAt.Before(appointments[j].StartsAt)
		}
		return appointments[i].ID < appointments[j].ID
	})
}

// SortDoctors orders doctors by username
func SortDoctors(doctors []*model.Doctor) {
	sort.Slice(doctors, func(i, j int) bool {
		return doctors[i].Account.Username < doctors[j].Account.Username
	})
}
