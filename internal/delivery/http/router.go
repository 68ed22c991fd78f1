package http

import (
	"net/http"

	"carebook/internal/delivery/http/handler"
	"carebook/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	bookingHandler     *handler.BookingHandler
	careServiceHandler *handler.CareServiceHandler
	clinicianHandler   *handler.ClinicianHandler
	auditLogHandler    *handler.AuditLogHandler
	metricsHandler     http.Handler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	careServiceHandler *handler.CareServiceHandler,
	clinicianHandler *handler.ClinicianHandler,
	auditLogHandler *handler.AuditLogHandler,
	metricsHandler http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		bookingHandler:     bookingHandler,
		careServiceHandler: careServiceHandler,
		clinicianHandler:   clinicianHandler,
		auditLogHandler:    auditLogHandler,
		metricsHandler:     metricsHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	r.router.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/services", r.careServiceHandler.ListServices).Methods(http.MethodGet)
	r.router.HandleFunc("/clinicians", r.clinicianHandler.ListClinicians).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// Protected routes
	r.router.Handle("/me",
		r.authMiddleware.Authenticate(http.HandlerFunc(r.authHandler.Me))).
		Methods(http.MethodGet)
	r.router.Handle("/bookings",
		r.authMiddleware.Authenticate(http.HandlerFunc(r.bookingHandler.ListBookings))).
		Methods(http.MethodGet)
	r.router.Handle("/bookings",
		r.authMiddleware.Authenticate(http.HandlerFunc(r.bookingHandler.CreateBooking))).
		Methods(http.MethodPost)

	// Admin routes
	r.router.Handle("/audit-logs",
		r.authMiddleware.Authenticate(middleware.RequireAdmin(http.HandlerFunc(r.auditLogHandler.ListRecent)))).
		Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
