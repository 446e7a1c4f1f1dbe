package adapthttp

import (
	"net/http"

	"fitfuel/internal/domain"
)

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		date, err := dateQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		plan, err := s.svc.Meals.ForDate(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, plan)

	case http.MethodPost:
		var m domain.Meal
		if err := parseJSON(r, &m); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.svc.Meals.Add(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleMeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		m, err := s.svc.Meals.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, m)

	case http.MethodPut:
		var m domain.Meal
		if err := parseJSON(r, &m); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		m.ID = id
		if err := s.svc.Meals.Update(r.Context(), m); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, m)

	case http.MethodDelete:
		if err := s.svc.Meals.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAllMeals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	meals, err := s.svc.Meals.ByType(r.Context(), domain.MealType(r.URL.Query().Get("type")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"meals": meals})
}
