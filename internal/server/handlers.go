package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"periscope/internal/logging"
	"periscope/internal/state"
	"periscope/internal/version"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a uuid for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version.Version,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

type deviceView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Platform    string   `json:"platform"`
	Description string   `json:"description,omitempty"`
	Directives  []string `json:"directives"`
}

func viewOf(d state.Device) deviceView {
	return deviceView{
		ID:          d.ID,
		Name:        d.Name,
		Platform:    d.Platform,
		Description: d.Description,
		Directives:  d.Directives,
	}
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	views := make([]deviceView, 0, len(s.store.Devices))
	for _, d := range s.store.Devices {
		views = append(views, viewOf(d))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleDevice(w http.ResponseWriter, r *http.Request) {
	device, ok := s.store.DeviceByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "device not found"})
		return
	}
	writeJSON(w, http.StatusOK, viewOf(device))
}

type queryRequest struct {
	DeviceID    string `json:"device_id"`
	DirectiveID string `json:"directive_id"`
	Target      string `json:"target"`
}

type queryResponse struct {
	Device    string `json:"device"`
	Directive string `json:"directive"`
	Target    string `json:"target"`
	Output    string `json:"output"`
	Cached    bool   `json:"cached"`
}

// handleQuery resolves the device and directive, then serves the
// response envelope from cache when fresh, synthesizing and caching it
// otherwise. Execution holds a worker slot for the duration.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Target) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": s.store.Params.Messages.NoInput})
		return
	}
	device, ok := s.store.DeviceByID(req.DeviceID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "device not found"})
		return
	}
	directive, ok := s.store.DirectiveByID(req.DirectiveID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "directive not found"})
		return
	}
	allowed := false
	for _, ref := range device.Directives {
		if ref == directive.ID {
			allowed = true
			break
		}
	}
	if !allowed {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "directive not supported by device"})
		return
	}

	if err := s.acquireWorker(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "service shutting down"})
		return
	}
	defer s.releaseWorker()

	key := cacheKey(device.ID, directive.ID, req.Target)
	maxAge := time.Duration(s.store.Params.Cache.TimeoutSeconds) * time.Second
	if c := s.store.Cache(); c != nil {
		if cached, hit, err := c.Get(r.Context(), key, maxAge); err == nil && hit {
			var resp queryResponse
			if json.Unmarshal(cached, &resp) == nil {
				resp.Cached = true
				writeJSON(w, http.StatusOK, resp)
				return
			}
		}
	}

	resp := queryResponse{
		Device:    device.Name,
		Directive: directive.Name,
		Target:    req.Target,
		Output:    executeDirective(device, directive, req.Target),
	}
	if c := s.store.Cache(); c != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := c.Set(r.Context(), key, payload); err != nil {
				s.logger.Warn("cache write failed", logging.Error(err))
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// executeDirective produces the response envelope for a query. Actual
// device transport is out of scope; the envelope carries the resolved
// names so the front end renders a consistent shape.
func executeDirective(device state.Device, directive state.Directive, target string) string {
	return directive.Name + " for " + target + " via " + device.Name + " (" + device.Address + ")"
}

func cacheKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
