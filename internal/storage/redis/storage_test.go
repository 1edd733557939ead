package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage/storagetest"
)

func newMiniredisStorage(t *testing.T) (*miniredis.Miniredis, *Storage) {
	t.Helper()
	mini := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mini.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	cfg := DefaultConfig()
	cfg.QueueTTL = time.Hour

	return mini, NewWithClient(client, cfg)
}

func TestStorageContract(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		NewStorage: func(t *testing.T) storagetest.Storage {
			_, s := newMiniredisStorage(t)
			return s
		},
	})
}

// Redis-specific behaviour

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini, s.storage = newMiniredisStorage(s.T())
	s.ctx = context.Background()
}

func (s *StorageSuite) TestDoctorPersistsDigestOnly() {
	c, err := credential.New("peter12", credential.SHA256Hasher{})
	s.Require().NoError(err)
	doctor := &model.Doctor{
		ID:      "doctor-1",
		Person:  model.Person{Name: "Alice"},
		Account: model.Account{Username: "alice", Credential: c},
	}
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, doctor))

	raw, err := s.mini.Get(doctorKey("doctor-1"))
	s.Require().NoError(err)
	s.NotContains(raw, "peter12")
	s.Contains(raw, c.StoredRepresentation())
}

func (s *StorageSuite) TestUsernameIndexWritten() {
	c, _ := credential.New("peter12", credential.SHA256Hasher{})
	doctor := &model.Doctor{ID: "doctor-1", Account: model.Account{Username: "alice", Credential: c}}
	s.Require().NoError(s.storage.SaveDoctor(s.ctx, doctor))

	id, err := s.mini.Get(usernameIndexKey("alice"))
	s.Require().NoError(err)
	s.Equal("doctor-1", id)
}

func (s *StorageSuite) TestCorruptDigestFailsLoad() {
	s.Require().NoError(s.mini.Set(doctorKey("doctor-1"), `{"ID":"doctor-1","Account":{"Username":"alice","Credential":"  "}}`))

	_, err := s.storage.GetDoctor(s.ctx, "doctor-1")
	s.ErrorIs(err, credential.ErrInvalidFormat)
}

func (s *StorageSuite) TestQueueExpiresWhenIdle() {
	s.Require().NoError(s.storage.PushQueue(s.ctx, &model.QueueEntry{PatientID: "patient-1"}))

	s.mini.FastForward(2 * time.Hour)

	entries, err := s.storage.ListQueue(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StorageSuite) TestListSkipsDanglingIndexEntries() {
	s.Require().NoError(s.storage.SavePatient(s.ctx, &model.Patient{ID: "patient-1", Person: model.Person{Name: "Carol"}}))
	_, err := s.mini.SAdd(patientsIndexKey(), "ghost")
	s.Require().NoError(err)

	patients, err := s.storage.ListPatients(s.ctx)
	s.Require().NoError(err)
	s.Len(patients, 1)
}
