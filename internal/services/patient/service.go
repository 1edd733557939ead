package patient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/clinicio/clinicio/internal/dependencies/clock"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Service manages patient records
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new patient Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Add registers a new patient
func (s *Service) Add(ctx context.Context, person model.Person) (*model.Patient, error) {
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("%w: name is required", err)
	}

	now := s.clock.Now()
	patient := &model.Patient{
		ID:        model.PatientID(uuid.NewString()),
		Person:    person,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePatient(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Info("patient added", slog.String("patient_id", string(patient.ID)))
	return patient, nil
}

// Get retrieves a patient by ID
func (s *Service) Get(ctx context.Context, id model.PatientID) (*model.Patient, error) {
	return s.storage.GetPatient(ctx, id)
}

// List returns all patients, oldest first
func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	return s.storage.ListPatients(ctx)
}

// Remove deletes a patient record. A patient still waiting in the queue or
// holding a scheduled appointment is kept and ErrPatientInCare returned.
func (s *Service) Remove(ctx context.Context, id model.PatientID) error {
	if _, err := s.storage.GetPatient(ctx, id); err != nil {
		return err
	}
	if err := s.checkNotInCare(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeletePatient(ctx, id); err != nil {
		return err
	}
	s.logger.Info("patient removed", slog.String("patient_id", string(id)))
	return nil
}

func (s *Service) checkNotInCare(ctx context.Context, id model.PatientID) error {
	entries, err := s.storage.ListQueue(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.PatientID == id {
			return fmt.Errorf("%w: waiting in the queue", model.ErrPatientInCare)
		}
	}

	appointments, err := s.storage.ListAppointments(ctx)
	if err != nil {
		return err
	}
	for _, a := range appointments {
		if a.PatientID == id && !a.IsCancelled() {
			return fmt.Errorf("%w: appointment %s is scheduled", model.ErrPatientInCare, a.ID)
		}
	}
	return nil
}
