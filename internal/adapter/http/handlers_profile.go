package adapthttp

import (
	"net/http"

	"fitfuel/internal/domain"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p, err := s.svc.Profile.Get(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		var p domain.UserProfile
		if err := parseJSON(r, &p); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		saved, err := s.svc.Profile.Update(r.Context(), p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleProfileTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	t, err := s.svc.Profile.PreviewTargets(domain.Goal(q.Get("goal")), domain.TrainingFrequency(q.Get("frequency")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		done, err := s.svc.Profile.IsOnboardingComplete(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"completed": done})

	case http.MethodPost:
		var body struct {
			Name              string                   `json:"name"`
			Goal              domain.Goal              `json:"goal"`
			TrainingFrequency domain.TrainingFrequency `json:"trainingFrequency"`
			DietaryPreference domain.DietaryPreference `json:"dietaryPreference"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.svc.Profile.CompleteOnboarding(r.Context(), body.Name, body.Goal, body.TrainingFrequency, body.DietaryPreference)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)

	case http.MethodDelete:
		if err := s.svc.Profile.ResetOnboarding(r.Context()); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"completed": false})

	default:
		methodNotAllowed(w)
	}
}
