package response

import (
	"time"

	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/auth"
)

// Doctor represents a doctor in API responses. The credential is never
// exposed.
type Doctor struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DoctorFromModel converts a model.Doctor to a response Doctor
func DoctorFromModel(d *model.Doctor) Doctor {
	return Doctor{
		ID:        string(d.ID),
		Username:  d.Account.Username,
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}

// DoctorList wraps a list of doctors
type DoctorList struct {
	Doctors []Doctor `json:"doctors"`
}

// DoctorListFromModel converts a slice of doctors
func DoctorListFromModel(doctors []*model.Doctor) DoctorList {
	list := DoctorList{Doctors: make([]Doctor, 0, len(doctors))}
	for _, d := range doctors {
		list.Doctors = append(list.Doctors, DoctorFromModel(d))
	}
	return list
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Doctor       Doctor    `json:"doctor"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Doctor:       DoctorFromModel(&s.Doctor),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// CredentialCheck is the response for a password validity check
type CredentialCheck struct {
	Valid bool `json:"valid"`
}

// Patient represents a patient in API responses
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientFromModel converts a model.Patient
func PatientFromModel(p *model.Patient) Patient {
	return Patient{
		ID:        string(p.ID),
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}

// PatientList wraps a list of patients
type PatientList struct {
	Patients []Patient `json:"patients"`
}

// PatientListFromModel converts a slice of patients
func PatientListFromModel(patients []*model.Patient) PatientList {
	list := PatientList{Patients: make([]Patient, 0, len(patients))}
	for _, p := range patients {
		list.Patients = append(list.Patients, PatientFromModel(p))
	}
	return list
}

// Appointment represents an appointment in API responses
type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	StartsAt  time.Time `json:"starts_at"`
	Status    string    `json:"status"`
}

// AppointmentFromModel converts a model.Appointment
func AppointmentFromModel(a *model.Appointment) Appointment {
	return Appointment{
		ID:        string(a.ID),
		PatientID: string(a.PatientID),
		DoctorID:  string(a.DoctorID),
		StartsAt:  a.StartsAt,
		Status:    string(a.Status),
	}
}

// AppointmentList wraps a list of appointments
type AppointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

// AppointmentListFromModel converts a slice of appointments
func AppointmentListFromModel(appointments []*model.Appointment) AppointmentList {
	list := AppointmentList{Appointments: make([]Appointment, 0, len(appointments))}
	for _, a := range appointments {
		list.Appointments = append(list.Appointments, AppointmentFromModel(a))
	}
	return list
}

// QueueEntry represents a walk-in queue position
type QueueEntry struct {
	Position  int       `json:"position"`
	PatientID string    `json:"patient_id"`
	ArrivedAt time.Time `json:"arrived_at"`
}

// QueueEntryFromModel converts a model.QueueEntry at the given 1-based position
func QueueEntryFromModel(e *model.QueueEntry, position int) QueueEntry {
	return QueueEntry{
		Position:  position,
		PatientID: string(e.PatientID),
		ArrivedAt: e.ArrivedAt,
	}
}

// Queue wraps the walk-in queue front to back
type Queue struct {
	Entries []QueueEntry `json:"entries"`
}

// QueueFromModel converts the queue
func QueueFromModel(entries []*model.QueueEntry) Queue {
	q := Queue{Entries: make([]QueueEntry, 0, len(entries))}
	for i, e := range entries {
		q.Entries = append(q.Entries, QueueEntryFromModel(e, i+1))
	}
	return q
}

// Totals represents clinic-wide counts
type Totals struct {
	Patients              int `json:"patients"`
	Doctors               int `json:"doctors"`
	AppointmentsScheduled int `json:"appointments_scheduled"`
	AppointmentsCancelled int `json:"appointments_cancelled"`
	QueueLength           int `json:"queue_length"`
}

// TotalsFromModel converts model.Totals
func TotalsFromModel(t *model.Totals) Totals {
	return Totals{
		Patients:              t.Patients,
		Doctors:               t.Doctors,
		AppointmentsScheduled: t.AppointmentsScheduled,
		AppointmentsCancelled: t.AppointmentsCancelled,
		QueueLength:           t.QueueLength,
	}
}
