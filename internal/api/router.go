package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinicio/clinicio/internal/api/apierr"
	"github.com/clinicio/clinicio/internal/api/handler"
	"github.com/clinicio/clinicio/internal/api/middleware"
	"github.com/clinicio/clinicio/internal/api/response"
	httpmw "github.com/clinicio/clinicio/internal/middleware"
	"github.com/clinicio/clinicio/internal/services/analytics"
	"github.com/clinicio/clinicio/internal/services/appointment"
	"github.com/clinicio/clinicio/internal/services/auth"
	"github.com/clinicio/clinicio/internal/services/patient"
	"github.com/clinicio/clinicio/internal/services/queue"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	PatientService     *patient.Service
	AppointmentService *appointment.Service
	QueueService       *queue.Service
	AnalyticsService   *analytics.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	credentialHandler := handler.NewCredentialHandler(cfg.AuthService)
	doctorHandler := handler.NewDoctorHandler(cfg.AuthService)
	patientHandler := handler.NewPatientHandler(cfg.PatientService)
	appointmentHandler := handler.NewAppointmentHandler(cfg.AppointmentService)
	queueHandler := handler.NewQueueHandler(cfg.QueueService)
	analyticsHandler := handler.NewAnalyticsHandler(cfg.AnalyticsService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := httpmw.Logging(cfg.Logger)
	recoveryMiddleware := httpmw.Recovery(cfg.Logger, internalErrorOnPanic)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(loggingMiddleware)
	api.Use(recoveryMiddleware)

	// Public routes
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/credentials/check", credentialHandler.Check).Methods(http.MethodPost)
	api.HandleFunc("/doctors/register", doctorHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/doctors/login", doctorHandler.Login).Methods(http.MethodPost)

	// Everything else requires a session
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/doctors", doctorHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/logout", doctorHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/me", doctorHandler.GetMe).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/me/password", doctorHandler.ChangePassword).Methods(http.MethodPut)

	protected.HandleFunc("/patients", patientHandler.Add).Methods(http.MethodPost)
	protected.HandleFunc("/patients", patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", patientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", patientHandler.Remove).Methods(http.MethodDelete)

	protected.HandleFunc("/appointments", appointmentHandler.Schedule).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", appointmentHandler.Cancel).Methods(http.MethodPost)

	protected.HandleFunc("/queue", queueHandler.Join).Methods(http.MethodPost)
	protected.HandleFunc("/queue", queueHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/queue/next", queueHandler.Next).Methods(http.MethodPost)

	protected.HandleFunc("/analytics/totals", analyticsHandler.Totals).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// internalErrorOnPanic answers a panicked request with the standard error body
func internalErrorOnPanic(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
