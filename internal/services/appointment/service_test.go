package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/dependencies/mocks"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage/memory"
	"github.com/clinicio/clinicio/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	patient *model.Patient
	doctor  *model.Doctor
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.patient = &model.Patient{ID: "p1", Person: model.Person{Name: "Patient"}, CreatedAt: s.clock.Now()}
	s.Require().NoError(s.storage.SavePatient(s.ctx, s.patient))

	cred, err := credential.New("vicodin1", credential.SHA256Hasher{})
	s.Require().NoError(err)
	s.doctor = &model.Doctor{
		ID:      "d1",
		Person:  model.Person{Name: "House"},
		Account: model.Account{Username: "house", Credential: cred},
	}
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, s.doctor))
}

func (s *ServiceSuite) tomorrow() time.Time {
	return s.clock.Now().Add(24 * time.Hour)
}

func (s *ServiceSuite) TestScheduleSucceeds() {
	appointment, err := s.service.Schedule(s.ctx, s.patient.ID, s.doctor.ID, s.tomorrow())
	s.Require().NoError(err)

	s.NotEmpty(appointment.ID)
	s.Equal(model.AppointmentScheduled, appointment.Status)
	s.Equal(s.tomorrow(), appointment.StartsAt)

	stored, err := s.service.Get(s.ctx, appointment.ID)
	s.Require().NoError(err)
	s.Equal(appointment.ID, stored.ID)
}

func (s *ServiceSuite) TestScheduleUnknownPatient() {
	_, err := s.service.Schedule(s.ctx, "nope", s.doctor.ID, s.tomorrow())
	s.ErrorIs(err, model.ErrPatientNotFound)
}

func (s *ServiceSuite) TestScheduleUnknownDoctor() {
	_, err := s.service.Schedule(s.ctx, s.patient.ID, "nope", s.tomorrow())
	s.ErrorIs(err, model.ErrDoctorNotFound)
}

func (s *ServiceSuite) TestScheduleRejectsPast() {
	_, err := s.service.Schedule(s.ctx, s.patient.ID, s.doctor.ID, s.clock.Now())
	s.ErrorIs(err, model.ErrAppointmentInPast)

	_, err = s.service.Schedule(s.ctx, s.patient.ID, s.doctor.ID, s.clock.Now().Add(-time.Hour))
	s.ErrorIs(err, model.ErrAppointmentInPast)
}

func (s *ServiceSuite) TestCancel() {
	appointment, _ := s.service.Schedule(s.ctx, s.patient.ID, s.doctor.ID, s.tomorrow())
	s.clock.Advance(time.Hour)

	cancelled, err := s.service.Cancel(s.ctx, appointment.ID)
	s.Require().NoError(err)
	s.True(cancelled.IsCancelled())
	s.Equal(s.clock.Now(), cancelled.UpdatedAt)

	_, err = s.service.Cancel(s.ctx, appointment.ID)
	s.ErrorIs(err, model.ErrAppointmentCancelled)
}

func (s *ServiceSuite) TestCancelUnknown() {
	_, err := s.service.Cancel(s.ctx, "nope")
	s.ErrorIs(err, model.ErrAppointmentNotFound)
}

func (s *ServiceSuite) TestListFilters() {
	later, _ := s.service.Schedule(s.ctx, s.patient.ID, s.doctor.ID, s.tomorrow().Add(time.Hour))
	sooner, _ := s.service.Schedule(s.ctx, s.patient.ID, s.doctor.ID, s.tomorrow())
	_, _ = s.service.Cancel(s.ctx, later.ID)

	all, err := s.service.List(s.ctx, Filter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(sooner.ID, all[0].ID)

	scheduled, err := s.service.List(s.ctx, Filter{Status: model.AppointmentScheduled})
	s.Require().NoError(err)
	s.Require().Len(scheduled, 1)
	s.Equal(sooner.ID, scheduled[0].ID)

	other, err := s.service.List(s.ctx, Filter{DoctorID: "someone-else"})
	s.Require().NoError(err)
	s.Empty(other)
}
