package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Doctor operations

// CreateDoctor claims the username with SETNX before writing the doctor, so
// of two concurrent registrations for one username only one succeeds.
func (s *Storage) CreateDoctor(ctx context.Context, doctor *model.Doctor) error {
	data, err := json.Marshal(doctor)
	if err != nil {
		return err
	}

	claimed, err := s.client.SetNX(ctx, usernameIndexKey(doctor.Account.Username), string(doctor.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrUsernameTaken
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, doctorKey(doctor.ID), data, 0)
		pipe.SAdd(ctx, doctorsIndexKey(), string(doctor.ID))
		return nil
	})
	if err != nil {
		// release the claim so the username is not locked out
		_ = s.client.Del(context.WithoutCancel(ctx), usernameIndexKey(doctor.Account.Username)).Err()
		return err
	}
	return nil
}

// SaveDoctor writes the doctor, its username index and its membership in the
// doctor set in one transaction. Only the credential digest is serialised.
func (s *Storage) SaveDoctor(ctx context.Context, doctor *model.Doctor) error {
	data, err := json.Marshal(doctor)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, doctorKey(doctor.ID), data, 0)
		pipe.Set(ctx, usernameIndexKey(doctor.Account.Username), string(doctor.ID), 0)
		pipe.SAdd(ctx, doctorsIndexKey(), string(doctor.ID))
		return nil
	})
	return err
}

func (s *Storage) GetDoctor(ctx context.Context, id model.DoctorID) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := s.getJSON(ctx, doctorKey(id), &doctor); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (s *Storage) GetDoctorByUsername(ctx context.Context, username string) (*model.Doctor, error) {
	// Look up doctor ID from username index
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDoctorNotFound
		}
		return nil, err
	}

	return s.GetDoctor(ctx, model.DoctorID(id))
}

func (s *Storage) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	values, err := s.listIndexed(ctx, doctorsIndexKey(), func(id string) string {
		return doctorKey(model.DoctorID(id))
	})
	if err != nil {
		return nil, err
	}

	doctors := make([]*model.Doctor, 0, len(values))
	for _, data := range values {
		var doctor model.Doctor
		if err := json.Unmarshal(data, &doctor); err != nil {
			return nil, err
		}
		doctors = append(doctors, &doctor)
	}
	storage.SortDoctors(doctors)
	return doctors, nil
}

// Patient operations

func (s *Storage) SavePatient(ctx context.Context, patient *model.Patient) error {
	data, err := json.Marshal(patient)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, patientKey(patient.ID), data, 0)
		pipe.SAdd(ctx, patientsIndexKey(), string(patient.ID))
		return nil
	})
	return err
}

func (s *Storage) GetPatient(ctx context.Context, id model.PatientID) (*model.Patient, error) {
	var patient model.Patient
	if err := s.getJSON(ctx, patientKey(id), &patient); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (s *Storage) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	values, err := s.listIndexed(ctx, patientsIndexKey(), func(id string) string {
		return patientKey(model.PatientID(id))
	})
	if err != nil {
		return nil, err
	}

	patients := make([]*model.Patient, 0, len(values))
	for _, data := range values {
		var patient model.Patient
		if err := json.Unmarshal(data, &patient); err != nil {
			return nil, err
		}
		patients = append(patients, &patient)
	}
	storage.SortPatients(patients)
	return patients, nil
}

func (s *Storage) DeletePatient(ctx context.Context, id model.PatientID) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, patientKey(id))
		pipe.SRem(ctx, patientsIndexKey(), string(id))
		return nil
	})
	return err
}

// Appointment operations

func (s *Storage) SaveAppointment(ctx context.Context, appointment *model.Appointment) error {
	data, err := json.Marshal(appointment)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, appointmentKey(appointment.ID), data, 0)
		pipe.SAdd(ctx, appointmentsIndexKey(), string(appointment.ID))
		return nil
	})
	return err
}

func (s *Storage) GetAppointment(ctx context.Context, id model.AppointmentID) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := s.getJSON(ctx, appointmentKey(id), &appointment); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (s *Storage) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	values, err := s.listIndexed(ctx, appointmentsIndexKey(), func(id string) string {
		return appointmentKey(model.AppointmentID(id))
	})
	if err != nil {
		return nil, err
	}

	appointments := make([]*model.Appointment, 0, len(values))
	for _, data := range values {
		var appointment model.Appointment
		if err := json.Unmarshal(data, &appointment); err != nil {
			return nil, err
		}
		appointments = append(appointments, &appointment)
	}
	storage.SortAppointments(appointments)
	return appointments, nil
}

// Walk-in queue operations

func (s *Storage) PushQueue(ctx context.Context, entry *model.QueueEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, queueKey(), data)
		if s.cfg.QueueTTL > 0 {
			pipe.Expire(ctx, queueKey(), s.cfg.QueueTTL)
		}
		return nil
	})
	return err
}

func (s *Storage) PopQueue(ctx context.Context) (*model.QueueEntry, error) {
	data, err := s.client.LPop(ctx, queueKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrQueueEmpty
		}
		return nil, err
	}

	var entry model.QueueEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Storage) ListQueue(ctx context.Context) ([]*model.QueueEntry, error) {
	values, err := s.client.LRange(ctx, queueKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.QueueEntry, 0, len(values))
	for _, v := range values {
		var entry model.QueueEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

// Helpers

func (s *Storage) getJSON(ctx context.Context, key string, v any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// listIndexed loads every value whose ID is a member of the index SET.
// IDs whose value has gone missing are skipped.
func (s *Storage) listIndexed(ctx context.Context, indexKey string, keyFor func(id string) string) ([][]byte, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFor(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make([][]byte, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		result = append(result, []byte(str))
	}
	return result, nil
}
