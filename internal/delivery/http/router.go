package http

import (
	"net/http"

	"clinic-dispatch/internal/delivery/http/handler"
	"clinic-dispatch/internal/delivery/http/middleware"
	"clinic-dispatch/internal/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	ticketHandler    *handler.TicketHandler
	dispatchHandler  *handler.DispatchHandler
	doctorHandler    *handler.DoctorHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	ticketHandler *handler.TicketHandler,
	dispatchHandler *handler.DispatchHandler,
	doctorHandler *handler.DoctorHandler,
	analyticsHandler *handler.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		ticketHandler:    ticketHandler,
		dispatchHandler:  dispatchHandler,
		doctorHandler:    doctorHandler,
		analyticsHandler: analyticsHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Intake routes (public - kiosk)
	api.HandleFunc("/tickets", r.ticketHandler.CreateTicket).Methods(http.MethodPost)
	api.HandleFunc("/queue", r.ticketHandler.GetQueue).Methods(http.MethodGet)

	// Staff routes (protected)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	// Dispatch (staff)
	staff.HandleFunc("/dispatch/next", r.dispatchHandler.DispatchNext).Methods(http.MethodPost)
	staff.HandleFunc("/dispatch/all", r.dispatchHandler.DispatchAll).Methods(http.MethodPost)
	staff.HandleFunc("/dispatch/load-ranking", r.dispatchHandler.LoadRanking).Methods(http.MethodGet)

	// Ticket lifecycle (staff)
	staff.HandleFunc("/tickets/{id}/complete", r.ticketHandler.CompleteTicket).Methods(http.MethodPost)

	// Roster management (staff)
	staff.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	staff.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/match", r.doctorHandler.MatchDoctors).Methods(http.MethodGet)

	// Analytics and availability (staff)
	staff.HandleFunc("/analytics/wait-times", r.analyticsHandler.GetWaitTimeStats).Methods(http.MethodGet)
	staff.HandleFunc("/analytics/active", r.analyticsHandler.GetActiveTickets).Methods(http.MethodGet)
	staff.HandleFunc("/analytics/doctors/search", r.analyticsHandler.SearchDoctors).Methods(http.MethodGet)
	staff.HandleFunc("/availability/free-slots", r.analyticsHandler.GetFreeSlots).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
