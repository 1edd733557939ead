package handler

import (
	"net/http"

	"github.com/clinicio/clinicio/internal/api/request"
	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/model"
	"github.com/clinicio/clinicio/internal/services/queue"
)

// QueueHandler handles walk-in queue endpoints
type QueueHandler struct {
	queueService *queue.Service
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(queueService *queue.Service) *QueueHandler {
	return &QueueHandler{queueService: queueService}
}

// Join handles POST /api/v1/queue
func (h *QueueHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinQueueRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.PatientID == "" {
		WriteError(w, NewMissingValueError("patient_id"))
		return
	}

	entry, err := h.queueService.Join(r.Context(), model.PatientID(req.PatientID))
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.queueService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, response.QueueEntryFromModel(entry, len(entries)))
}

// Next handles POST /api/v1/queue/next
func (h *QueueHandler) Next(w http.ResponseWriter, r *http.Request) {
	entry, err := h.queueService.Next(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.QueueEntryFromModel(entry, 1))
}

// List handles GET /api/v1/queue
func (h *QueueHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queueService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.QueueFromModel(entries))
}
