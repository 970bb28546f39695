package httptransport

import (
	"encoding/json"
	"io"
	"net/http"

	"cabo-replay/internal/board"
	"cabo-replay/internal/config"
	"cabo-replay/internal/session"
	"cabo-replay/internal/snapshot"
)

type BoardHandlers struct {
	cfg config.ServerConfig
}

func NewBoardHandlers(cfg config.ServerConfig) *BoardHandlers {
	return &BoardHandlers{cfg: cfg}
}

// Project accepts a captured snapshot document as the request body and
// responds with the board projection for the observer in the user_id query
// parameter (falling back to the configured default observer).
func (h *BoardHandlers) Project() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := h.readDoc(w, r)
		if !ok {
			return
		}
		sess := session.Static(h.observer(r))
		view := board.ProjectFor(doc, sess)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// Capture accepts a live-state document and responds with an independent
// snapshot envelope for later projection.
func (h *BoardHandlers) Capture() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := h.readDoc(w, r)
		if !ok {
			return
		}
		snap := snapshot.Capture(doc)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}

func (h *BoardHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (h *BoardHandlers) observer(r *http.Request) string {
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id
	}
	return h.cfg.DefaultUserID
}

func (h *BoardHandlers) readDoc(w http.ResponseWriter, r *http.Request) (snapshot.Doc, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxSnapshotBytes))
	if err != nil {
		WriteHTTPError(w, http.StatusRequestEntityTooLarge, "snapshot_too_large")
		return nil, false
	}
	doc, err := snapshot.Decode(body)
	if err != nil {
		WriteHTTPError(w, http.StatusBadRequest, "invalid_snapshot")
		return nil, false
	}
	return doc, true
}
