package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/stzanetis/BureaucracySimulator-BE/controllers"
	"github.com/stzanetis/BureaucracySimulator-BE/middleware"
)

func optionsHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func InitRouter() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)

	// Health check endpoint for Docker health checks (unauthenticated)
	r.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "bureaucracy-simulator-api",
		})
	})).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or dev defaults
	origins := []string{"http://localhost:3000", "http://localhost:8080", "http://127.0.0.1:3000", "http://127.0.0.1:8080"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		for _, p := range strings.Split(env, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Session-Token", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	// Catch-all OPTIONS handler so CORS preflight skips basic auth
	r.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// Everything below requires basic auth; session tokens resolve the player
	api := r.PathPrefix("/").Subrouter()
	api.Use(middleware.BasicAuthMiddleware, middleware.SessionMiddleware)

	api.HandleFunc("/startscreen", controllers.StartscreenHandler).Methods(http.MethodGet)
	api.HandleFunc("/about-us", controllers.AboutUsHandler).Methods(http.MethodGet)

	api.HandleFunc("/endscreen", controllers.GetEndscreenStatsHandler).Methods(http.MethodGet)
	api.HandleFunc("/endscreen", controllers.PostEndscreenStatsHandler).Methods(http.MethodPost)

	api.HandleFunc("/leaderboard", controllers.GetLeaderboardHandler).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/{name}", controllers.PutLeaderboardEntryHandler).Methods(http.MethodPut)
	api.HandleFunc("/leaderboard/{name}", controllers.DeleteLeaderboardEntryHandler).Methods(http.MethodDelete)

	// User creation plus the task routes nested under /user
	UserRoutes(api)

	return r
}
