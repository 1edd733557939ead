package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/clinicio/clinicio/internal/dependencies/clock"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Service runs the walk-in queue
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// serialises the duplicate check in Join with the push
	mu sync.Mutex
}

// New creates a new queue Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Join appends a patient to the back of the queue
func (s *Service) Join(ctx context.Context, patientID model.PatientID) (*model.QueueEntry, error) {
	if _, err := s.storage.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.storage.ListQueue(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.PatientID == patientID {
			return nil, model.ErrAlreadyQueued
		}
	}

	entry := &model.QueueEntry{
		PatientID: patientID,
		ArrivedAt: s.clock.Now(),
	}
	if err := s.storage.PushQueue(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("patient queued",
		slog.String("patient_id", string(patientID)),
		slog.Int("position", len(entries)+1),
	)
	return entry, nil
}

// Next removes and returns the patient at the front of the queue. Entries
// whose patient record no longer exists are dropped and skipped.
func (s *Service) Next(ctx context.Context) (*model.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		entry, err := s.storage.PopQueue(ctx)
		if err != nil {
			return nil, err
		}

		if _, err := s.storage.GetPatient(ctx, entry.PatientID); err != nil {
			if errors.Is(err, model.ErrPatientNotFound) {
				s.logger.Warn("dropped queue entry for removed patient",
					slog.String("patient_id", string(entry.PatientID)),
				)
				continue
			}
			return nil, err
		}

		s.logger.Info("patient called",
			slog.String("patient_id", string(entry.PatientID)),
			slog.Duration("waited", s.clock.Now().Sub(entry.ArrivedAt)),
		)
		return entry, nil
	}
}

// List returns the queue front to back
func (s *Service) List(ctx context.Context) ([]*model.QueueEntry, error) {
	return s.storage.ListQueue(ctx)
}
