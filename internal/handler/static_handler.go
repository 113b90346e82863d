package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticHandler serves the marketing front-end from a directory, with an
// index.html fallback so client-side routes resolve.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Admin serves the admin dashboard page.
func (h *StaticHandler) Admin(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "admin.html"))
}

// Site serves static assets and falls back to index.html for anything else.
func (h *StaticHandler) Site(w http.ResponseWriter, r *http.Request) {
	// Reject path traversal before touching the filesystem.
	clean := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if strings.HasPrefix(clean, "..") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.dir, clean)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
