package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"fine-reconciliation/internal/usecase"
)

// Server is the dashboard-facing HTTP surface over the fine pipeline.
type Server struct {
	loader    *usecase.Loader
	lifecycle *usecase.Lifecycle
	jwtSecret string
	now       func() time.Time
}

// New creates a server over the given usecase components.
func New(loader *usecase.Loader, lifecycle *usecase.Lifecycle, jwtSecret string) *Server {
	return &Server{
		loader:    loader,
		lifecycle: lifecycle,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// Handler builds the full middleware-wrapped handler: CORS on the outside
// (dashboards are cross-origin), then request logging, then session auth.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware(s.jwtSecret))

	api.HandleFunc("/fines/report", requireRole(reportMinRole, s.handleReport)).Methods(http.MethodGet)
	api.HandleFunc("/fines/me", s.handleMyFines).Methods(http.MethodGet)
	api.HandleFunc("/fines/by-user/{userId}", requireRole(reportMinRole, s.handleFinesByUser)).Methods(http.MethodGet)
	api.HandleFunc("/fines/{fineId}/waive", requireRole(waiveMinRole, s.handleWaive)).Methods(http.MethodPost)
	api.HandleFunc("/fines/{fineId}/adjust", requireRole(adjustMinRole, s.handleAdjust)).Methods(http.MethodPost)
	api.HandleFunc("/fines/{fineId}/pay", requireRole(payMinRole, s.handlePay)).Methods(http.MethodPost)
	api.HandleFunc("/payments/{paymentId}/receipt", requireRole(payMinRole, s.handleReceipt)).Methods(http.MethodGet)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(loggingMiddleware(router))
}
