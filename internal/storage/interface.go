package storage

import (
	"context"

	"github.com/clinicio/clinicio/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Doctor operations. CreateDoctor reserves the username atomically and
	// fails with model.ErrUsernameTaken if another doctor holds it.
	CreateDoctor(ctx context.Context, doctor *model.Doctor) error
	SaveDoctor(ctx context.Context, doctor *model.Doctor) error
	GetDoctor(ctx context.Context, id model.DoctorID) (*model.Doctor, error)
	GetDoctorByUsername(ctx context.Context, username string) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)

	// Patient operations
	SavePatient(ctx context.Context, patient *model.Patient) error
	GetPatient(ctx context.Context, id model.PatientID) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	DeletePatient(ctx context.Context, id model.PatientID) error

	// Appointment operations
	SaveAppointment(ctx context.Context, appointment *model.Appointment) error
	GetAppointment(ctx context.Context, id model.AppointmentID) (*model.Appointment, error)
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)

	// Walk-in queue operations
	PushQueue(ctx context.Context, entry *model.QueueEntry) error
	PopQueue(ctx context.Context) (*model.QueueEntry, error)
	ListQueue(ctx context.Context) ([]*model.QueueEntry, error)
}
