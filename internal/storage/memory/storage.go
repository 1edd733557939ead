package memory

import (
	"context"
	"sync"

	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	doctors       map[model.DoctorID]*model.Doctor
	usernameIndex map[string]model.DoctorID
	patients      map[model.PatientID]*model.Patient
	appointments  map[model.AppointmentID]*model.Appointment
	queue         []*model.QueueEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		doctors:       make(map[model.DoctorID]*model.Doctor),
		usernameIndex: make(map[string]model.DoctorID),
		patients:      make(map[model.PatientID]*model.Patient),
		appointments:  make(map[model.AppointmentID]*model.Appointment),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Doctor operations

func (s *Storage) CreateDoctor(ctx context.Context, doctor *model.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usernameIndex[doctor.Account.Username]; taken {
		return model.ErrUsernameTaken
	}
	s.doctors[doctor.ID] = doctor
	s.usernameIndex[doctor.Account.Username] = doctor.ID
	return nil
}

func (s *Storage) SaveDoctor(ctx context.Context, doctor *model.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[doctor.ID] = doctor
	s.usernameIndex[doctor.Account.Username] = doctor.ID
	return nil
}

func (s *Storage) GetDoctor(ctx context.Context, id model.DoctorID) (*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doctor, ok := s.doctors[id]
	if !ok {
		return nil, model.ErrDoctorNotFound
	}
	return doctor, nil
}

func (s *Storage) GetDoctorByUsername(ctx context.Context, username string) (*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrDoctorNotFound
	}
	doctor, ok := s.doctors[id]
	if !ok {
		return nil, model.ErrDoctorNotFound
	}
	return doctor, nil
}

func (s *Storage) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doctors := make([]*model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		doctors = append(doctors, d)
	}
	storage.SortDoctors(doctors)
	return doctors, nil
}

// Patient operations

func (s *Storage) SavePatient(ctx context.Context, patient *model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[patient.ID] = patient
	return nil
}

func (s *Storage) GetPatient(ctx context.Context, id model.PatientID) (*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	patient, ok := s.patients[id]
	if !ok {
		return nil, model.ErrPatientNotFound
	}
	return patient, nil
}

func (s *Storage) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	patients := make([]*model.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		patients = append(patients, p)
	}
	storage.SortPatients(patients)
	return patients, nil
}

func (s *Storage) DeletePatient(ctx context.Context, id model.PatientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.patients, id)
	return nil
}

// Appointment operations

func (s *Storage) SaveAppointment(ctx context.Context, appointment *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appointment.ID] = appointment
	return nil
}

func (s *Storage) GetAppointment(ctx context.Context, id model.AppointmentID) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appointment, ok := s.appointments[id]
	if !ok {
		return nil, model.ErrAppointmentNotFound
	}
	return appointment, nil
}

func (s *Storage) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appointments := make([]*model.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		appointments = append(appointments, a)
	}
	storage.SortAppointments(appointments)
	return appointments, nil
}

// Walk-in queue operations

func (s *Storage) PushQueue(ctx context.Context, entry *model.QueueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, entry)
	return nil
}

func (s *Storage) PopQueue(ctx context.Context) (*model.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil, model.ErrQueueEmpty
	}
	entry := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return entry, nil
}

func (s *Storage) ListQueue(ctx context.Context) ([]*model.QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.QueueEntry, len(s.queue))
	copy(result, s.queue)
	return result, nil
}
