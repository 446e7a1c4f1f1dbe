package adapthttp

import (
	"net/http"

	"fitfuel/internal/app"
	"fitfuel/internal/domain"
)

func (s *Server) handleGroceries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		opts := app.ListOptions{AllCategories: q.Get("all") == "1"}
		if v := q.Get("category"); v != "" {
			c := domain.GroceryCategory(v)
			opts.Category = &c
		}
		list, err := s.svc.Groceries.List(r.Context(), opts)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var it domain.GroceryItem
		if err := parseJSON(r, &it); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.svc.Groceries.Add(r.Context(), it)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAllPurchased(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		var body struct {
			Purchased bool `json:"purchased"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		n, err := s.svc.Groceries.SetAllPurchased(r.Context(), body.Purchased)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"updated": n})

	case http.MethodDelete:
		n, err := s.svc.Groceries.ClearPurchased(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": n})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleGrocery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		it, err := s.svc.Groceries.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, it)

	case http.MethodPut:
		var it domain.GroceryItem
		if err := parseJSON(r, &it); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		it.ID = id
		if err := s.svc.Groceries.Update(r.Context(), it); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, it)

	case http.MethodDelete:
		if err := s.svc.Groceries.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleGroceryPurchased(w http.ResponseWriter, r *http.Request) {
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
		Purchased bool `json:"purchased"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Groceries.SetPurchased(r.Context(), id, body.Purchased); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "purchased": body.Purchased})
}
