package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	agentapp "github.com/buildestate/backend/application/agent"
	appointmentapp "github.com/buildestate/backend/application/appointment"
	leadapp "github.com/buildestate/backend/application/lead"
	propertyapp "github.com/buildestate/backend/application/property"
	savedapp "github.com/buildestate/backend/application/savedproperty"
	statsapp "github.com/buildestate/backend/application/stats"
	userapp "github.com/buildestate/backend/application/user"
	"github.com/buildestate/backend/cmd/config"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	PropertyApp    propertyapp.PropertyApp
	AppointmentApp appointmentapp.AppointmentApp
	AgentApp       agentapp.AgentApp
	LeadApp        leadapp.LeadApp
	SavedApp       savedapp.SavedPropertyApp
	StatsApp       statsapp.StatsApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth
	router.HandleFunc("/api/users/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/users/admin", rh.AdminLogin).Methods(http.MethodPost)
	router.HandleFunc("/api/users/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/users/forgot", rh.ForgotPassword).Methods(http.MethodPost)
	router.HandleFunc("/api/users/reset/{token}", rh.ResetPassword).Methods(http.MethodPost)
	router.HandleFunc("/api/users/me", rh.GetMe).Methods(http.MethodGet)

	// Saved properties
	router.HandleFunc("/api/users/saved-properties", rh.ListSavedProperties).Methods(http.MethodGet)
	router.HandleFunc("/api/users/saved-properties", rh.SaveProperty).Methods(http.MethodPost)
	router.HandleFunc("/api/users/saved-properties/{id}", rh.RemoveSavedProperty).Methods(http.MethodDelete)

	// Properties
	router.HandleFunc("/api/properties", rh.ListProperties).Methods(http.MethodGet)
	router.HandleFunc("/api/properties/single/{id}", rh.GetProperty).Methods(http.MethodGet)
	router.HandleFunc("/api/properties", adminOnly(rh.CreateProperty)).Methods(http.MethodPost)
	router.HandleFunc("/api/properties/{id}", adminOnly(rh.UpdateProperty)).Methods(http.MethodPut)
	router.HandleFunc("/api/properties/{id}", adminOnly(rh.DeleteProperty)).Methods(http.MethodDelete)

	// Appointments
	router.HandleFunc("/api/appointments/schedule", rh.ScheduleViewing).Methods(http.MethodPost)
	router.HandleFunc("/api/appointments/user", rh.ListMyAppointments).Methods(http.MethodGet)
	router.HandleFunc("/api/appointments/stats", adminOnly(rh.AppointmentStats)).Methods(http.MethodGet)
	router.HandleFunc("/api/appointments", adminOnly(rh.GetAllAppointments)).Methods(http.MethodGet)
	router.HandleFunc("/api/appointments/status", adminOnly(rh.UpdateAppointmentStatus)).Methods(http.MethodPut)
	router.HandleFunc("/api/appointments/meeting-link", adminOnly(rh.UpdateMeetingLink)).Methods(http.MethodPut)
	router.HandleFunc("/api/appointments/{id}/cancel", rh.CancelAppointment).Methods(http.MethodPut)
	router.HandleFunc("/api/appointments/{id}/feedback", rh.SubmitAppointmentFeedback).Methods(http.MethodPost)

	// Agents
	router.HandleFunc("/api/agents", rh.ListAgents).Methods(http.MethodGet)
	router.HandleFunc("/api/agents/{id}", rh.GetAgent).Methods(http.MethodGet)
	router.HandleFunc("/api/agents", adminOnly(rh.CreateAgent)).Methods(http.MethodPost)
	router.HandleFunc("/api/agents/{id}", adminOnly(rh.UpdateAgent)).Methods(http.MethodPut)
	router.HandleFunc("/api/agents/{id}", adminOnly(rh.DeleteAgent)).Methods(http.MethodDelete)

	// Leads
	router.HandleFunc("/api/applications", rh.SubmitApplication).Methods(http.MethodPost)
	router.HandleFunc("/api/applications", adminOnly(rh.ListApplications)).Methods(http.MethodGet)
	router.HandleFunc("/api/contact", rh.SubmitContact).Methods(http.MethodPost)
	router.HandleFunc("/api/contact", adminOnly(rh.ListContacts)).Methods(http.MethodGet)
	router.HandleFunc("/api/newsletter", rh.Subscribe).Methods(http.MethodPost)

	// Admin dashboard
	router.HandleFunc("/api/admin/stats", adminOnly(rh.AdminDashboard)).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(StatsMiddleware(rh.StatsApp))
	router.Use(RateLimitMiddleware())
	router.Use(AuthMiddleware(cfg, rh.UserApp))

	return router
}
