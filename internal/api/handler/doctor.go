package handler

import (
	"net/http"

	"github.com/clinicio/clinicio/internal/api/middleware"
	"github.com/clinicio/clinicio/internal/api/request"
	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/auth"
)

// DoctorHandler handles doctor account endpoints
type DoctorHandler struct {
	authService *auth.Service
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(authService *auth.Service) *DoctorHandler {
	return &DoctorHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/doctors/register
func (h *DoctorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterDoctorRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	username, err := required("username", req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}
	password, err := required("password", req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	person := model.Person{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	session, err := h.authService.RegisterDoctor(r.Context(), username, password, person)
	if err != nil {
		WriteError(w, err)
		return
	}

	setSessionCookie(w, session)
	response.Created(w, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/doctors/login
func (h *DoctorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	username, err := required("username", req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}
	password, err := required("password", req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		WriteError(w, err)
		return
	}

	setSessionCookie(w, session)
	response.OK(w, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/doctors/logout
func (h *DoctorHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.authService.InvalidateSession(session.Token)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	response.NoContent(w)
}

// GetMe handles GET /api/v1/doctors/me
func (h *DoctorHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	doctor := middleware.MustGetDoctor(r.Context())
	response.OK(w, response.DoctorFromModel(doctor))
}

// ChangePassword handles PUT /api/v1/doctors/me/password
func (h *DoctorHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	current, err := required("current_password", req.CurrentPassword)
	if err != nil {
		WriteError(w, err)
		return
	}
	next, err := required("new_password", req.NewPassword)
	if err != nil {
		WriteError(w, err)
		return
	}

	session := middleware.MustGetSession(r.Context())
	if err := h.authService.ChangePassword(r.Context(), session, current, next); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// List handles GET /api/v1/doctors
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.authService.ListDoctors(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.DoctorListFromModel(doctors))
}

func setSessionCookie(w http.ResponseWriter, session *auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
