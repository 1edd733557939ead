package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clinicio/clinicio/internal/dependencies/clock"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Filter narrows a listing. Zero fields match everything.
type Filter struct {
	PatientID model.PatientID
	DoctorID  model.DoctorID
	Status    model.AppointmentStatus
}

func (f Filter) matches(a *model.Appointment) bool {
	if f.PatientID != "" && a.PatientID != f.PatientID {
		return false
	}
	if f.DoctorID != "" && a.DoctorID != f.DoctorID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return true
}

// Service books and cancels appointments
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new appointment Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Schedule books a patient with a doctor. Both must exist and the start
// time must be in the future.
func (s *Service) Schedule(ctx context.Context, patientID model.PatientID, doctorID model.DoctorID, startsAt time.Time) (*model.Appointment, error) {
	if _, err := s.storage.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	if _, err := s.storage.GetDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !startsAt.After(now) {
		return nil, model.ErrAppointmentInPast
	}

	appointment := &model.Appointment{
		ID:        model.AppointmentID(uuid.NewString()),
		PatientID: patientID,
		DoctorID:  doctorID,
		StartsAt:  startsAt.UTC(),
		Status:    model.AppointmentScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info("appointment scheduled",
		slog.String("appointment_id", string(appointment.ID)),
		slog.String("patient_id", string(patientID)),
		slog.String("doctor_id", string(doctorID)),
		slog.Time("starts_at", appointment.StartsAt),
	)
	return appointment, nil
}

// Get retrieves an appointment by ID
func (s *Service) Get(ctx context.Context, id model.AppointmentID) (*model.Appointment, error) {
	return s.storage.GetAppointment(ctx, id)
}

// List returns appointments matching filter, earliest first
func (s *Service) List(ctx context.Context, filter Filter) ([]*model.Appointment, error) {
	all, err := s.storage.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.Appointment, 0, len(all))
	for _, a := range all {
		if filter.matches(a) {
			result = append(result, a)
		}
	}
	return result, nil
}

// Cancel marks an appointment cancelled
func (s *Service) Cancel(ctx context.Context, id model.AppointmentID) (*model.Appointment, error) {
	appointment, err := s.storage.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return nil, model.ErrAppointmentCancelled
	}

	updated := *appointment
	updated.Status = model.AppointmentCancelled
	updated.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveAppointment(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("appointment cancelled", slog.String("appointment_id", string(id)))
	return &updated, nil
}
