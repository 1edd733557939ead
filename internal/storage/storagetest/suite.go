// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Storage is the backend under test
type Storage = storage.Storage

// Suite runs the shared storage contract against NewStorage
type Suite struct {
	suite.Suite
	NewStorage func(t *testing.T) Storage

	storage Storage
	ctx     context.Context
	now     time.Time
}

func (s *Suite) SetupTest() {
	s.storage = s.NewStorage(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *Suite) doctor(id, username, password string) *model.Doctor {
	c, err := credential.New(password, credential.SHA256Hasher{})
	s.Require().NoError(err)
	return &model.Doctor{
		ID:     model.DoctorID(id),
		Person: model.Person{Name: "Dr " + username},
		Account: model.Account{
			Username:   username,
			Credential: c,
			CreatedAt:  s.now,
			UpdatedAt:  s.now,
		},
		CreatedAt: s.now,
	}
}

// Doctor tests

func (s *Suite) TestSaveAndGetDoctor() {
	doctor := s.doctor("doctor-1", "alice", "peter12")
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, doctor))

	retrieved, err := s.storage.GetDoctor(s.ctx, "doctor-1")
	s.Require().NoError(err)
	s.Equal(doctor.ID, retrieved.ID)
	s.Equal("Dr alice", retrieved.Person.Name)
	s.True(doctor.Account.Credential.Equal(retrieved.Account.Credential))
}

func (s *Suite) TestGetDoctorNotFound() {
	_, err := s.storage.GetDoctor(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrDoctorNotFound)
}

func (s *Suite) TestGetDoctorByUsername() {
	doctor := s.doctor("doctor-1", "alice", "peter12")
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, doctor))

	retrieved, err := s.storage.GetDoctorByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(doctor.ID, retrieved.ID)

	_, err = s.storage.GetDoctorByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrDoctorNotFound)
}

func (s *Suite) TestSaveDoctorReplacesCredential() {
	doctor := s.doctor("doctor-1", "alice", "peter12")
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, doctor))

	replacement, err := credential.New("peter13", credential.SHA256Hasher{})
	s.Require().NoError(err)
	updated := *doctor
	updated.Account = doctor.Account.WithCredential(replacement, s.now.Add(time.Hour))
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, &updated))

	retrieved, err := s.storage.GetDoctorByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	ok, err := retrieved.Account.Credential.Matches("peter13")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *Suite) TestCreateDoctorRejectsTakenUsername() {
	s.Require().NoError(s.storage.CreateDoctor(s.ctx, s.doctor("doctor-1", "alice", "peter12")))

	err := s.storage.CreateDoctor(s.ctx, s.doctor("doctor-2", "alice", "joseph"))
	s.ErrorIs(err, model.ErrUsernameTaken)

	byName, err := s.storage.GetDoctorByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.DoctorID("doctor-1"), byName.ID)
	_, err = s.storage.GetDoctor(s.ctx, "doctor-2")
	s.ErrorIs(err, model.ErrDoctorNotFound)
}

func (s *Suite) TestCreateDoctorConcurrentSameUsername() {
	const attempts = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		taken   int
	)
	for i := 0; i < attempts; i++ {
		doctor := s.doctor(fmt.Sprintf("doctor-%d", i), "alice", "peter12")
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.storage.CreateDoctor(s.ctx, doctor)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, model.ErrUsernameTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, created)
	s.Equal(attempts-1, taken)
	doctors, err := s.storage.ListDoctors(s.ctx)
	s.Require().NoError(err)
	s.Len(doctors, 1)
}

func (s *Suite) TestListDoctorsOrderedByUsername() {
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, s.doctor("doctor-2", "bob", "peter12")))
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, s.doctor("doctor-1", "alice", "peter12")))

	doctors, err := s.storage.ListDoctors(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(doctors, 2)
	s.Equal("alice", doctors[0].Account.Username)
	s.Equal("bob", doctors[1].Account.Username)
}

// Patient tests

func (s *Suite) TestSaveAndGetPatient() {
	patient := &model.Patient{ID: "patient-1", Person: model.Person{Name: "Carol", Phone: "91234567"}, CreatedAt: s.now}
	s.Require().NoError(s.storage.SavePatient(s.ctx, patient))

	retrieved, err := s.storage.GetPatient(s.ctx, "patient-1")
	s.Require().NoError(err)
	s.Equal("Carol", retrieved.Person.Name)
	s.Equal("91234567", retrieved.Person.Phone)
}

func (s *Suite) TestGetPatientNotFound() {
	_, err := s.storage.GetPatient(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPatientNotFound)
}

func (s *Suite) TestDeletePatient() {
	patient := &model.Patient{ID: "patient-1", Person: model.Person{Name: "Carol"}, CreatedAt: s.now}
	_ = s.storage.SavePatient(s.ctx, patient)

	s.Require().NoError(s.storage.DeletePatient(s.ctx, "patient-1"))

	_, err := s.storage.GetPatient(s.ctx, "patient-1")
	s.ErrorIs(err, model.ErrPatientNotFound)

	patients, err := s.storage.ListPatients(s.ctx)
	s.Require().NoError(err)
	s.Empty(patients)
}

func (s *Suite) TestListPatientsOrderedByCreation() {
	_ = s.storage.SavePatient(s.ctx, &model.Patient{ID: "p-b", Person: model.Person{Name: "Second"}, CreatedAt: s.now.Add(time.Minute)})
	_ = s.storage.SavePatient(s.ctx, &model.Patient{ID: "p-a", Person: model.Person{Name: "First"}, CreatedAt: s.now})

	patients, err := s.storage.ListPatients(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(patients, 2)
	s.Equal(model.PatientID("p-a"), patients[0].ID)
	s.Equal(model.PatientID("p-b"), patients[1].ID)
}

// Appointment tests

func (s *Suite) TestSaveAndGetAppointment() {
	appointment := &model.Appointment{
		ID:        "appt-1",
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		StartsAt:  s.now.Add(24 * time.Hour),
		Status:    model.AppointmentScheduled,
	}
	s.Require().NoError(s.storage.SaveAppointment(s.ctx, appointment))

	retrieved, err := s.storage.GetAppointment(s.ctx, "appt-1")
	s.Require().NoError(err)
	s.Equal(model.AppointmentScheduled, retrieved.Status)
	s.True(appointment.StartsAt.Equal(retrieved.StartsAt))
}

func (s *Suite) TestGetAppointmentNotFound() {
	_, err := s.storage.GetAppointment(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAppointmentNotFound)
}

func (s *Suite) TestListAppointmentsOrderedByStart() {
	_ = s.storage.SaveAppointment(s.ctx, &model.Appointment{ID: "late", StartsAt: s.now.Add(2 * time.Hour)})
	_ = s.storage.SaveAppointment(s.ctx, &model.Appointment{ID: "early", StartsAt: s.now.Add(time.Hour)})

	appointments, err := s.storage.ListAppointments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(appointments, 2)
	s.Equal(model.AppointmentID("early"), appointments[0].ID)
	s.Equal(model.AppointmentID("late"), appointments[1].ID)
}

// Queue tests

func (s *Suite) TestQueueIsFIFO() {
	_ = s.storage.PushQueue(s.ctx, &model.QueueEntry{PatientID: "first", ArrivedAt: s.now})
	_ = s.storage.PushQueue(s.ctx, &model.QueueEntry{PatientID: "second", ArrivedAt: s.now.Add(time.Minute)})

	entries, err := s.storage.ListQueue(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(model.PatientID("first"), entries[0].PatientID)

	entry, err := s.storage.PopQueue(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PatientID("first"), entry.PatientID)

	entry, err = s.storage.PopQueue(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PatientID("second"), entry.PatientID)
}

func (s *Suite) TestPopEmptyQueue() {
	_, err := s.storage.PopQueue(s.ctx)
	s.ErrorIs(err, model.ErrQueueEmpty)
}

func (s *Suite) TestListEmptyQueue() {
	entries, err := s.storage.ListQueue(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}
