package http

import (
	"net/http"

	"hospital-registry/internal/delivery/http/handler"
	"hospital-registry/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	departmentHandler    *handler.DepartmentHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	dashboardHandler     *handler.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	metricsHandler       http.Handler
}

type Handlers struct {
	Auth          *handler.AuthHandler
	Patient       *handler.PatientHandler
	Doctor        *handler.DoctorHandler
	Department    *handler.DepartmentHandler
	Appointment   *handler.AppointmentHandler
	MedicalRecord *handler.MedicalRecordHandler
	Dashboard     *handler.DashboardHandler
}

// NewRouter builds the API router. A nil authMiddleware serves the API without
// authentication; a nil metricsHandler leaves /metrics unmounted.
func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          handlers.Auth,
		patientHandler:       handlers.Patient,
		doctorHandler:        handlers.Doctor,
		departmentHandler:    handlers.Department,
		appointmentHandler:   handlers.Appointment,
		medicalRecordHandler: handlers.MedicalRecord,
		dashboardHandler:     handlers.Dashboard,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		metricsHandler:       metricsHandler,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight requests are
// answered even though no route accepts OPTIONS.
func (r *Router) Setup() http.Handler {
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Registry routes (protected)
	registry := api.NewRoute().Subrouter()
	if r.authMiddleware != nil {
		registry.Use(r.authMiddleware.Authenticate)

		registry.HandleFunc("/auth/me", r.authHandler.GetCurrentOperator).Methods(http.MethodGet)
		registry.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	}

	registry.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Patients
	registry.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	registry.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	registry.HandleFunc("/patients/batch", r.patientHandler.CreatePatients).Methods(http.MethodPost)
	registry.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	registry.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	registry.Handle("/patients/{id}", r.adminOnly(r.patientHandler.DeletePatient)).Methods(http.MethodDelete)

	// Doctors
	registry.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	registry.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	registry.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	registry.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	registry.Handle("/doctors/{id}", r.adminOnly(r.doctorHandler.DeleteDoctor)).Methods(http.MethodDelete)

	// Departments
	registry.HandleFunc("/departments", r.departmentHandler.GetAllDepartments).Methods(http.MethodGet)
	registry.HandleFunc("/departments", r.departmentHandler.CreateDepartment).Methods(http.MethodPost)
	registry.HandleFunc("/departments/{id}", r.departmentHandler.GetDepartment).Methods(http.MethodGet)
	registry.HandleFunc("/departments/{id}", r.departmentHandler.UpdateDepartment).Methods(http.MethodPut)
	registry.Handle("/departments/{id}", r.adminOnly(r.departmentHandler.DeleteDepartment)).Methods(http.MethodDelete)

	// Appointments
	registry.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	registry.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	registry.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	registry.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	registry.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	registry.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)
	registry.Handle("/appointments/{id}", r.adminOnly(r.appointmentHandler.DeleteAppointment)).Methods(http.MethodDelete)

	// Medical records
	registry.HandleFunc("/medical-records", r.medicalRecordHandler.GetAllMedicalRecords).Methods(http.MethodGet)
	registry.HandleFunc("/medical-records", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPost)
	registry.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)
	registry.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.UpdateMedicalRecord).Methods(http.MethodPut)
	registry.Handle("/medical-records/{id}", r.adminOnly(r.medicalRecordHandler.DeleteMedicalRecord)).Methods(http.MethodDelete)

	if r.corsMiddleware == nil {
		return r.router
	}
	return r.corsMiddleware.Handle(r.router)
}

// adminOnly restricts deletes to admins when authentication is enabled
func (r *Router) adminOnly(h http.HandlerFunc) http.Handler {
	if r.authMiddleware == nil {
		return h
	}
	return middleware.RequireAdmin(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
