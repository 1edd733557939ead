package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/clinicio/clinicio/internal/api"
	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/factory"
	"github.com/clinicio/clinicio/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	server    *httptest.Server
	tokenFile string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Logger: logger})
	s.Require().NoError(err)

	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		PatientService:     app.PatientService,
		AppointmentService: app.AppointmentService,
		QueueService:       app.QueueService,
		AnalyticsService:   app.AnalyticsService,
	}))
	s.tokenFile = filepath.Join(s.T().TempDir(), "token")
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

// run executes the CLI with JSON output and returns stdout
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--server", s.server.URL, "--token-file", s.tokenFile, "--output", "json"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) mustRun(v any, args ...string) {
	out, err := s.run(args...)
	s.Require().NoError(err, out)
	if v != nil {
		s.Require().NoError(json.Unmarshal([]byte(out), v), out)
	}
}

func (s *CLISuite) TestCredentialCheckOffline() {
	var result response.CredentialCheck
	s.mustRun(&result, "credential", "check", "Capital123")
	s.True(result.Valid)

	out, err := s.run("credential", "check", "Capital Tan")
	s.ErrorIs(err, ErrInvalidPassword)
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.False(result.Valid)

	_, err = s.run("credential", "check")
	s.ErrorIs(err, credential.ErrMissingValue)
}

func (s *CLISuite) TestRegisterSavesToken() {
	var auth response.AuthResponse
	s.mustRun(&auth, "doctor", "register", "--user", "taub", "--pass", "plastics1", "--name", "Chris Taub")
	s.NotEmpty(auth.SessionToken)

	saved, err := os.ReadFile(s.tokenFile)
	s.Require().NoError(err)
	s.Equal(auth.SessionToken, string(saved))

	var me response.Doctor
	s.mustRun(&me, "doctor", "me")
	s.Equal("taub", me.Username)
}

func (s *CLISuite) TestRegisterWithoutPasswordIsMissingValue() {
	_, err := s.run("doctor", "register", "--user", "taub", "--name", "Chris Taub")
	s.ErrorIs(err, credential.ErrMissingValue)
}

func (s *CLISuite) TestRegisterRejectsInvalidPassword() {
	_, err := s.run("doctor", "register", "--user", "taub", "--pass", "pete", "--name", "Chris Taub")

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("INVALID_FORMAT", apiErr.Code)
	s.Equal(400, apiErr.Status)
	s.NotEmpty(apiErr.RequestID)
}

func (s *CLISuite) TestLoginLogoutAndPasswd() {
	s.mustRun(nil, "doctor", "register", "--user", "taub", "--pass", "plastics1", "--name", "Chris Taub")
	s.mustRun(nil, "doctor", "passwd", "--current", "plastics1", "--new", "plastics2")
	s.mustRun(nil, "doctor", "logout")

	_, err := os.Stat(s.tokenFile)
	s.True(os.IsNotExist(err))

	_, err = s.run("doctor", "login", "--user", "taub", "--pass", "plastics1")
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("INVALID_CREDENTIALS", apiErr.Code)

	s.mustRun(nil, "doctor", "login", "--user", "taub", "--pass", "plastics2")

	var doctors response.DoctorList
	s.mustRun(&doctors, "doctor", "list")
	s.Len(doctors.Doctors, 1)
}

func (s *CLISuite) TestClinicWorkflow() {
	s.mustRun(nil, "doctor", "register", "--user", "taub", "--pass", "plastics1", "--name", "Chris Taub")

	var patient response.Patient
	s.mustRun(&patient, "patient", "add", "--name", "Alice", "--phone", "555-0100")
	s.Equal("Alice", patient.Name)

	var fetched response.Patient
	s.mustRun(&fetched, "patient", "get", patient.ID)
	s.Equal(patient.ID, fetched.ID)

	var entry response.QueueEntry
	s.mustRun(&entry, "queue", "join", patient.ID)
	s.Equal(1, entry.Position)

	var queue response.Queue
	s.mustRun(&queue, "queue", "list")
	s.Len(queue.Entries, 1)

	s.mustRun(&entry, "queue", "next")
	s.Equal(patient.ID, entry.PatientID)

	at := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
	var appt response.Appointment
	s.mustRun(&appt, "appointment", "schedule", "--patient", patient.ID, "--at", at)
	s.Equal("scheduled", appt.Status)

	var list response.AppointmentList
	s.mustRun(&list, "appointment", "list", "--status", "scheduled")
	s.Len(list.Appointments, 1)

	s.mustRun(&appt, "appointment", "cancel", appt.ID)
	s.Equal("cancelled", appt.Status)

	var totals response.Totals
	s.mustRun(&totals, "totals")
	s.Equal(response.Totals{Patients: 1, Doctors: 1, AppointmentsCancelled: 1}, totals)

	s.mustRun(nil, "patient", "remove", patient.ID)
	var patients response.PatientList
	s.mustRun(&patients, "patient", "list")
	s.Empty(patients.Patients)
}

func (s *CLISuite) TestHealth() {
	var result HealthResult
	s.mustRun(&result, "health")
	s.Equal("ok", result.Status)
	s.Equal(s.server.URL, result.Server)
}

func (s *CLISuite) TestTextOutput() {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server", s.server.URL, "--token-file", s.tokenFile, "credential", "check", "joseph"})
	s.Require().NoError(cmd.Execute())
	s.Equal("valid\n", out.String())
}
