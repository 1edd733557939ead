package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinicio/clinicio/internal/api/request"
	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/patient"
)

// PatientHandler handles patient record endpoints
type PatientHandler struct {
	patientService *patient.Service
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *patient.Service) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// Add handles POST /api/v1/patients
func (h *PatientHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPatientRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.patientService.Add(r.Context(), model.Person{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.PatientFromModel(p))
}

// List handles GET /api/v1/patients
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PatientListFromModel(patients))
}

// Get handles GET /api/v1/patients/{id}
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PatientID(mux.Vars(r)["id"])

	p, err := h.patientService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PatientFromModel(p))
}

// Remove handles DELETE /api/v1/patients/{id}
func (h *PatientHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PatientID(mux.Vars(r)["id"])

	if err := h.patientService.Remove(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
