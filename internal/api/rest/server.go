package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fortuna/hoops/internal/metrics"
	"github.com/fortuna/hoops/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port   string
	server *http.Server
}

// NewRouter builds the full handler chain: request id, logging, recovery and
// CORS wrap the router so they also cover unmatched routes. Recovery sits
// inside logging so a panicking request still gets its access-log line.
func NewRouter(db *store.Database, version string) http.Handler {
	handler := NewHandler(db, version)

	router := mux.NewRouter()
	router.Use(MetricsMiddleware)
	router.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handler.NotFound)

	router.HandleFunc("/", handler.Home).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet, http.MethodHead)

	// Players
	router.HandleFunc("/players", handler.GetPlayers).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/player/{playerID:[0-9]+}", handler.GetPlayer).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/player/{playerID:[0-9]+}/career", handler.GetCareer).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/compare", handler.ComparePlayers).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/search", handler.SearchPlayers).Methods(http.MethodGet, http.MethodHead)

	// Reference data
	router.HandleFunc("/teams", handler.GetTeams).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/seasons", handler.GetSeasons).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/awards", handler.GetAwards).Methods(http.MethodGet, http.MethodHead)

	// Stats
	router.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/stats", handler.GetStats).Methods(http.MethodGet, http.MethodHead)

	return RequestIDMiddleware(LoggingMiddleware(RecoveryMiddleware(CORSMiddleware()(router))))
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database, version string) *Server {
	return &Server{
		port: port,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           NewRouter(db, version),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
