package analytics

import (
	"context"

	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Service computes clinic statistics from stored records
type Service struct {
	storage storage.Storage
}

// New creates a new analytics Service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Totals counts every record kind in the clinic
func (s *Service) Totals(ctx context.Context) (*model.Totals, error) {
	patients, err := s.storage.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := s.storage.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.storage.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	queue, err := s.storage.ListQueue(ctx)
	if err != nil {
		return nil, err
	}

	totals := &model.Totals{
		Patients:    len(patients),
		Doctors:     len(doctors),
		QueueLength: len(queue),
	}
	for _, a := range appointments {
		if a.IsCancelled() {
			totals.AppointmentsCancelled++
		} else {
			totals.AppointmentsScheduled++
		}
	}
	return totals, nil
}
