package http

import (
	"net/http"

	"healthcare-saas-backend/internal/delivery/http/handler"
	"healthcare-saas-backend/internal/delivery/http/middleware"
	"healthcare-saas-backend/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	roleHandler        *handler.RoleHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	actorMiddleware    *middleware.ActorMiddleware
}

func NewRouter(
	roleHandler *handler.RoleHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	actorMiddleware *middleware.ActorMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		roleHandler:        roleHandler,
		loggingMiddleware:  loggingMiddleware,
		recoveryMiddleware: recoveryMiddleware,
		corsMiddleware:     corsMiddleware,
		actorMiddleware:    actorMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Role management
	roles := api.PathPrefix("/roles").Subrouter()
	roles.HandleFunc("/", r.roleHandler.Create).Methods(http.MethodPost)
	roles.HandleFunc("/", r.roleHandler.List).Methods(http.MethodGet)
	roles.HandleFunc("/{id}", r.roleHandler.Get).Methods(http.MethodGet)
	roles.HandleFunc("/{id}", r.roleHandler.Update).Methods(http.MethodPut)
	roles.HandleFunc("/{id}/status", r.roleHandler.ToggleStatus).Methods(http.MethodPatch)

	// Unmatched requests still get the standard envelope
	r.router.NotFoundHandler = envelopeError(http.StatusNotFound, "Not Found")
	r.router.MethodNotAllowedHandler = envelopeError(http.StatusMethodNotAllowed, "Method Not Allowed")

	// Outermost first: logging sees the final status, recovery catches
	// panics from everything below it
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.actorMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.OK(w, "Service is healthy", map[string]string{"status": "ok"})
}

func envelopeError(code int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Write(w, code, message, nil)
	})
}
