package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/dependencies/clock"
	"github.com/clinicio/clinicio/internal/dependencies/random"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/storage"
)

const (
	// TokenLength is the number of characters in a session token
	TokenLength = 32
	// TokenAlphabet is the character set session tokens are drawn from
	TokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
	ErrPasswordReuse      = errors.New("new password must differ from the current one")
	// ErrCorruptCredential means a stored digest could not be read. It is a
	// server-side data fault, never the caller's input.
	ErrCorruptCredential = errors.New("stored credential is unreadable")
)

// Session represents an authenticated doctor session. Sessions held by the
// service are never modified in place; callers receive their own copy.
type Session struct {
	Token     string
	DoctorID  model.DoctorID
	Doctor    model.Doctor
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles doctor accounts and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	hasher  credential.Hasher
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 12 * time.Hour,
	}
}

// New creates a new auth Service. New credentials are hashed with hasher;
// existing digests of any supported scheme still verify.
func New(storage storage.Storage, clock clock.Clock, random random.Random, hasher credential.Hasher, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          random,
		hasher:          hasher,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// CheckPassword reports whether raw would be accepted as a new password
func (s *Service) CheckPassword(raw string) bool {
	return credential.IsValid(raw)
}

// RegisterDoctor creates a doctor account and signs it in
func (s *Service) RegisterDoctor(ctx context.Context, username, password string, person model.Person) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", model.ErrInvalidRecord)
	}
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("%w: name is required", err)
	}

	cred, err := credential.New(password, s.hasher)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	doctor := &model.Doctor{
		ID:     model.DoctorID(uuid.NewString()),
		Person: person,
		Account: model.Account{
			Username:   username,
			Credential: cred,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		CreatedAt: now,
	}

	if err := s.storage.CreateDoctor(ctx, doctor); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	s.logger.Info("doctor registered",
		slog.String("doctor_id", string(doctor.ID)),
		slog.String("username", username),
	)

	return s.createSession(doctor), nil
}

// Login authenticates a doctor and creates a session. Digests produced by a
// weaker scheme than the configured one are replaced after a successful match.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	doctor, err := s.storage.GetDoctorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrDoctorNotFound) {
			s.logger.Warn("login failed", slog.String("username", username), slog.String("reason", "unknown user"))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.matchStored(doctor, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn("login failed", slog.String("username", username), slog.String("reason", "wrong password"))
		return nil, ErrInvalidCredentials
	}

	if credential.NeedsRehash(s.hasher, doctor.Account.Credential.Digest()) {
		s.rehash(ctx, doctor, password)
	}

	return s.createSession(doctor), nil
}

// matchStored checks raw against the doctor's stored digest
func (s *Service) matchStored(doctor *model.Doctor, raw string) (bool, error) {
	ok, err := doctor.Account.Credential.Matches(raw)
	if err != nil {
		s.logger.Error("stored credential unreadable",
			slog.String("doctor_id", string(doctor.ID)),
			slog.String("error", err.Error()),
		)
		return false, fmt.Errorf("%w: doctor %s", ErrCorruptCredential, doctor.ID)
	}
	return ok, nil
}

// rehash upgrades a doctor's digest to the configured scheme. Failures are
// logged and the old digest stays in place.
func (s *Service) rehash(ctx context.Context, doctor *model.Doctor, password string) {
	cred, err := credential.New(password, s.hasher)
	if err != nil {
		s.logger.Warn("credential rehash skipped",
			slog.String("doctor_id", string(doctor.ID)),
			slog.String("error", err.Error()),
		)
		return
	}

	updated := *doctor
	updated.Account = doctor.Account.WithCredential(cred, s.clock.Now())
	if err := s.storage.SaveDoctor(ctx, &updated); err != nil {
		s.logger.Error("credential rehash failed",
			slog.String("doctor_id", string(doctor.ID)),
			slog.String("error", err.Error()),
		)
		return
	}
	*doctor = updated

	s.logger.Info("credential rehashed",
		slog.String("doctor_id", string(doctor.ID)),
		slog.String("scheme", string(s.hasher.Scheme())),
	)
}

// ChangePassword replaces the session doctor's credential. Every other
// session of that doctor is ended.
func (s *Service) ChangePassword(ctx context.Context, session *Session, current, next string) error {
	doctor, err := s.storage.GetDoctor(ctx, session.DoctorID)
	if err != nil {
		return err
	}

	ok, err := s.matchStored(doctor, current)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}

	reused, err := s.matchStored(doctor, next)
	if err != nil {
		return err
	}
	if reused {
		return ErrPasswordReuse
	}

	cred, err := credential.New(next, s.hasher)
	if err != nil {
		return err
	}

	updated := *doctor
	updated.Account = doctor.Account.WithCredential(cred, s.clock.Now())
	if err := s.storage.SaveDoctor(ctx, &updated); err != nil {
		return err
	}

	s.mu.Lock()
	for token, other := range s.sessions {
		if other.DoctorID == updated.ID && token != session.Token {
			delete(s.sessions, token)
		}
	}
	if current, ok := s.sessions[session.Token]; ok {
		replaced := *current
		replaced.Doctor = updated
		s.sessions[session.Token] = &replaced
	}
	s.mu.Unlock()

	s.logger.Info("password changed", slog.String("doctor_id", string(updated.ID)))
	return nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	cp := *session
	return &cp, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// GetDoctor returns the doctor for a session token
func (s *Service) GetDoctor(token string) (*model.Doctor, error) {
	session, err := s.ValidateSession(token)
	if err != nil {
		return nil, err
	}
	return &session.Doctor, nil
}

// ListDoctors returns every registered doctor
func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.storage.ListDoctors(ctx)
}

// createSession creates a new session for a doctor
func (s *Service) createSession(doctor *model.Doctor) *Session {
	token := "sess_" + s.random.String(TokenLength, TokenAlphabet)
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		DoctorID:  doctor.ID,
		Doctor:    *doctor,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	cp := *session
	return &cp
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
