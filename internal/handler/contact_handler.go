package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/brightsite/backend/internal/model"
	"github.com/brightsite/backend/internal/notify"
	"github.com/brightsite/backend/internal/service"
)

const errProvideContact = "Provide name, message and at least email or phone."

// ContactHandler handles public contact-form submission.
type ContactHandler struct {
	contacts service.ContactService
	// notifier is nil when SMTP is not configured; submissions then go
	// unannounced but are still stored.
	notifier notify.Notifier
}

// NewContactHandler creates a ContactHandler. notifier may be nil.
func NewContactHandler(contacts service.ContactService, notifier notify.Notifier) *ContactHandler {
	return &ContactHandler{contacts: contacts, notifier: notifier}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type submitResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// Submit handles POST /api/contact. name and message are required, plus at
// least one of email/phone; all fields are trimmed before validation and
// storage. The notification attempt is awaited but its outcome never affects
// the response.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errProvideContact)
		return
	}

	sub := &model.Submission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if sub.Name == "" || sub.Message == "" || !sub.HasContactMethod() {
		writeError(w, http.StatusBadRequest, errProvideContact)
		return
	}

	if err := h.contacts.Submit(r.Context(), sub); err != nil {
		slog.Error("store submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save")
		return
	}

	if h.notifier != nil {
		if err := h.notifier.Send(r.Context(), sub); err != nil {
			slog.Error("notification send failed", "submission_id", sub.ID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, submitResponse{OK: true, ID: sub.ID})
}
