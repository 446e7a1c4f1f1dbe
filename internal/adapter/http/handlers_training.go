package adapthttp

import (
	"fmt"
	"net/http"
	"strconv"

	"fitfuel/internal/domain"
)

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		date, err := dateQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		day, err := s.svc.Training.ForDate(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, day)

	case http.MethodPost:
		var t domain.TrainingSession
		if err := parseJSON(r, &t); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.svc.Training.Add(r.Context(), t)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := s.svc.Training.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, t)

	case http.MethodPut:
		var t domain.TrainingSession
		if err := parseJSON(r, &t); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		t.ID = id
		if err := s.svc.Training.Update(r.Context(), t); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, t)

	case http.MethodDelete:
		if err := s.svc.Training.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSessionCompleted(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Training.SetCompleted(r.Context(), id, body.Completed); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "completed": body.Completed})
}

func (s *Server) handleAllSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	var f domain.SessionFilter
	if v := q.Get("type"); v != "" {
		t := domain.TrainingType(v)
		f.Type = &t
	}
	if v := q.Get("completed"); v != "" {
		done, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("completed must be true or false: %w", err))
			return
		}
		f.Completed = &done
	}
	sessions, err := s.svc.Training.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}
