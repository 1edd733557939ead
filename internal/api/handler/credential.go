package handler

import (
	"net/http"

	"github.com/clinicio/clinicio/internal/api/request"
	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/services/auth"
)

// CredentialHandler exposes the password rules to forms
type CredentialHandler struct {
	authService *auth.Service
}

// NewCredentialHandler creates a new credential handler
func NewCredentialHandler(authService *auth.Service) *CredentialHandler {
	return &CredentialHandler{authService: authService}
}

// Check handles POST /api/v1/credentials/check
func (h *CredentialHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req request.CheckCredentialRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	password, err := required("password", req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.CredentialCheck{Valid: h.authService.CheckPassword(password)})
}
