package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinicio/clinicio/internal/api/middleware"
	"github.com/clinicio/clinicio/internal/api/request"
	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/appointment"
)

// AppointmentHandler handles appointment endpoints
type AppointmentHandler struct {
	appointmentService *appointment.Service
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Schedule handles POST /api/v1/appointments
func (h *AppointmentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleAppointmentRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.PatientID == "" {
		WriteError(w, NewMissingValueError("patient_id"))
		return
	}
	if req.StartsAt.IsZero() {
		WriteError(w, NewMissingValueError("starts_at"))
		return
	}

	doctorID := model.DoctorID(req.DoctorID)
	if doctorID == "" {
		doctorID = middleware.MustGetDoctor(r.Context()).ID
	}

	a, err := h.appointmentService.Schedule(r.Context(), model.PatientID(req.PatientID), doctorID, req.StartsAt)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.AppointmentFromModel(a))
}

// List handles GET /api/v1/appointments?patient_id=&doctor_id=&status=
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := appointment.Filter{
		PatientID: model.PatientID(q.Get("patient_id")),
		DoctorID:  model.DoctorID(q.Get("doctor_id")),
		Status:    model.AppointmentStatus(q.Get("status")),
	}

	switch filter.Status {
	case "", model.AppointmentScheduled, model.AppointmentCancelled:
	default:
		WriteError(w, NewInvalidRequestError("status must be scheduled or cancelled"))
		return
	}

	appointments, err := h.appointmentService.List(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.AppointmentListFromModel(appointments))
}

// Get handles GET /api/v1/appointments/{id}
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.AppointmentID(mux.Vars(r)["id"])

	a, err := h.appointmentService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.AppointmentFromModel(a))
}

// Cancel handles POST /api/v1/appointments/{id}/cancel
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := model.AppointmentID(mux.Vars(r)["id"])

	a, err := h.appointmentService.Cancel(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.AppointmentFromModel(a))
}
