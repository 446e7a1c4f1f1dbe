// Package adapthttp is the JSON-over-HTTP driving adapter.
package adapthttp

import (
	"net/http"

	"fitfuel/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc    *app.Services
	webDir string
}

// New creates a Server wired to the given application services.
func New(svc *app.Services, webDir string) *Server {
	return &Server{svc: svc, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/dashboard", s.handleDashboard)
	api.HandleFunc("/dashboard/stream", s.handleDashboardStream)
	api.HandleFunc("/history", s.handleHistory)

	api.HandleFunc("/meals", s.handleMeals)
	api.HandleFunc("/meals/all", s.handleAllMeals)
	api.HandleFunc("/meals/{id}", s.handleMeal)

	api.HandleFunc("/training", s.handleSessions)
	api.HandleFunc("/training/all", s.handleAllSessions)
	api.HandleFunc("/training/{id}", s.handleSession)
	api.HandleFunc("/training/{id}/completed", s.handleSessionCompleted)

	api.HandleFunc("/grocery", s.handleGroceries)
	api.HandleFunc("/grocery/purchased", s.handleAllPurchased)
	api.HandleFunc("/grocery/{id}", s.handleGrocery)
	api.HandleFunc("/grocery/{id}/purchased", s.handleGroceryPurchased)

	api.HandleFunc("/profile", s.handleProfile)
	api.HandleFunc("/profile/targets", s.handleProfileTargets)
	api.HandleFunc("/onboarding", s.handleOnboarding)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
