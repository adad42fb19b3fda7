package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jpalmerr/exampleboard/internal/page"
	"github.com/jpalmerr/exampleboard/internal/store"
)

// maxBodyBytes caps JSON request bodies on the session API.
const maxBodyBytes = 4 << 10

type selectRequest struct {
	AppID string `json:"appId"`
}

type panelRequest struct {
	Active string `json:"active"`
}

type selectResponse struct {
	Session    store.Snapshot  `json:"session"`
	Navigation page.Navigation `json:"navigation"`
}

// handleCatalog returns all sections and apps as JSON.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Sections())
}

// handleApp returns a single app as JSON.
func (s *Server) handleApp(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	app, ok := s.catalog.Lookup(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("example %q not found", id))
		return
	}
	s.writeJSON(w, http.StatusOK, app)
}

// handleCreateSession starts a page view session for the posted app ID.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap := s.store.Create(req.AppID)
	s.logger.Debug("session created", "session_id", snap.ID, "app_id", req.AppID)
	s.writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.PathValue("sid"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// handleDeleteSession discards a session when its page unloads.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.PathValue("sid")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSelect applies a menu click to the session.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.AppID == "" {
		writeJSONError(w, http.StatusBadRequest, "appId is required")
		return
	}

	snap, nav, err := s.store.Select(r.PathValue("sid"), req.AppID)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, selectResponse{Session: snap, Navigation: nav})
}

// handlePanel switches the active panel.
func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	var req panelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := page.ParsePanel(req.Active)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := s.store.SetPanel(r.PathValue("sid"), p)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// handleEvents streams session snapshots via Server-Sent Events.
//
// Write deadlines prevent goroutine leaks when clients are slow or
// disconnected.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if _, ok := w.(http.Flusher); !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	sid := r.PathValue("sid")
	snap, err := s.store.Get(sid)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	ch, err := s.store.Subscribe(sid)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	defer s.store.Unsubscribe(sid, ch)

	rc := http.NewResponseController(w)
	deadlinesSupported := true

	writeAndFlush := func(snap store.Snapshot) error {
		data, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		if deadlinesSupported {
			if err := rc.SetWriteDeadline(time.Now().Add(sseWriteTimeout)); err != nil {
				s.logger.Warn("sse write deadlines not supported", "error", err)
				deadlinesSupported = false
			}
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		return rc.Flush()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if err := writeAndFlush(snap); err != nil {
		return
	}

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				// session deleted or expired
				return
			}
			if err := writeAndFlush(snap); err != nil {
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, page.ErrUnknownPanel):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("session operation failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a JSON body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
