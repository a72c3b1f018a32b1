package viewer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/frcpath/zebraview/internal/pkg/zebra"
)

// pathColors paints the six robot paths, blue1 through red3.
var pathColors = [6]string{
	"darkblue", "royalblue", "deepskyblue",
	"darkred", "crimson", "lightcoral",
}

type eventResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	EndDate     string `json:"end_date,omitempty"`
	PathMatches int    `json:"path_matches"`
	Total       int    `json:"total_matches"`
}

type timeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type matchResponse struct {
	Key       string            `json:"key"`
	Event     string            `json:"event"`
	Blue      []string          `json:"blue"`
	Red       []string          `json:"red"`
	Stations  []zebra.PathStats `json:"stations"`
	Videos    []Video           `json:"videos"`
	TimeRange timeRange         `json:"time_range"`
}

type stationPaths struct {
	zebra.PathWindow
	Color string `json:"color"`
}

type pathsResponse struct {
	Key     string         `json:"key"`
	Start   float64        `json:"start"`
	End     float64        `json:"end"`
	Windows []stationPaths `json:"windows"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"matches": s.data.Len(),
		"events":  len(s.data.Events()),
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	summary := s.data.EventSummary()
	events := s.data.Events()

	out := make([]eventResponse, 0, len(events))
	for _, key := range events {
		resp := eventResponse{Key: key, Name: key}
		if info, ok := s.events[key]; ok {
			resp.Name = info.Name
			resp.EndDate = info.EndDate
		}
		if sum, ok := summary[key]; ok {
			resp.PathMatches = sum.PathMatches
			resp.Total = sum.Total
		}
		out = append(out, resp)
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleEventMatches(w http.ResponseWriter, r *http.Request) {
	event := chi.URLParam(r, "event")
	level := r.URL.Query().Get("level")
	if level == "" {
		level = "qm"
	}

	matches := LevelMatches(s.data.Matches(event), level)
	if matches == nil {
		matches = []LevelMatch{}
	}
	respondJSON(w, http.StatusOK, matches)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookupMatch(w, r)
	if !ok {
		return
	}

	first, last := m.TimeRange()
	respondJSON(w, http.StatusOK, matchResponse{
		Key:       m.Key,
		Event:     m.Event,
		Blue:      m.Blue,
		Red:       m.Red,
		Stations:  m.Stations[:],
		Videos:    ExtractVideos(m.Score),
		TimeRange: timeRange{Start: first, End: last},
	})
}

func (s *Server) handleMatchPaths(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookupMatch(w, r)
	if !ok {
		return
	}

	start, end := m.TimeRange()
	var err error
	if v := r.URL.Query().Get("start"); v != "" {
		if start, err = strconv.ParseFloat(v, 64); err != nil {
			respondError(w, http.StatusBadRequest, "invalid start parameter", err)
			return
		}
	}
	if v := r.URL.Query().Get("end"); v != "" {
		if end, err = strconv.ParseFloat(v, 64); err != nil {
			respondError(w, http.StatusBadRequest, "invalid end parameter", err)
			return
		}
	}

	windows := m.Window(start, end)
	out := make([]stationPaths, 0, len(windows))
	for i, win := range windows {
		out = append(out, stationPaths{PathWindow: win, Color: pathColors[i]})
	}
	respondJSON(w, http.StatusOK, pathsResponse{
		Key:     m.Key,
		Start:   start,
		End:     end,
		Windows: out,
	})
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.field)
}

func (s *Server) lookupMatch(w http.ResponseWriter, r *http.Request) (*zebra.Match, bool) {
	key := chi.URLParam(r, "key")
	m, err := s.data.Get(key)
	if err != nil {
		var keyErr *zebra.KeyError
		if errors.As(err, &keyErr) {
			respondError(w, http.StatusNotFound, "match not found", err)
		} else {
			respondError(w, http.StatusInternalServerError, "lookup failed", err)
		}
		return nil, false
	}
	return m, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		slog.Debug("Request failed", "status", status, "message", message, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
