package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brightsite/backend/internal/model"
	"github.com/brightsite/backend/internal/service"
	"github.com/brightsite/backend/pkg/auth"
)

// AdminHandler handles admin login/logout and the authorized read endpoints.
type AdminHandler struct {
	auth     service.AuthService
	contacts service.ContactService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(authService service.AuthService, contacts service.ContactService) *AdminHandler {
	return &AdminHandler{auth: authService, contacts: contacts}
}

// loginRequest is the expected JSON body for POST /api/admin/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// Login handles POST /api/admin/login. Unknown username and wrong password
// produce the same 401 "Invalid" so neither can be told apart.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing")
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err)
		}
		writeError(w, http.StatusUnauthorized, "Invalid")
		return
	}

	auth.SetSessionCookie(w, session.Token)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Logout handles POST /api/admin/logout. Idempotent: logging out without a
// session is still {ok:true}.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			slog.Error("session delete failed", "error", err)
		}
	}
	auth.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Contacts handles GET /api/admin/contacts (behind auth.RequireAdmin).
// Returns every submission known at call time, newest first.
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contacts.List(r.Context())
	if err != nil {
		slog.Error("list submissions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "DB error")
		return
	}

	// Return [] not null for an empty store
	if subs == nil {
		subs = []*model.Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

type statsResponse struct {
	OK    bool  `json:"ok"`
	Stats stats `json:"stats"`
}

type stats struct {
	TotalContacts int64 `json:"totalContacts"`
}

// Stats handles GET /api/admin/stats (behind auth.RequireAdmin).
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	total, err := h.contacts.Count(r.Context())
	if err != nil {
		slog.Error("count submissions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "DB error")
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{OK: true, Stats: stats{TotalContacts: total}})
}
