package http

import (
	"net/http"

	"homecare-scheduler/internal/delivery/http/handler"
	"homecare-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	patientHandler          *handler.PatientHandler
	doctorHandler           *handler.DoctorHandler
	scheduleHandler         *handler.ScheduleHandler
	exportHandler           *handler.ExportHandler
	auditLogHandler         *handler.AuditLogHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	exportHandler *handler.ExportHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		patientHandler:          patientHandler,
		doctorHandler:           doctorHandler,
		scheduleHandler:         scheduleHandler,
		exportHandler:           exportHandler,
		auditLogHandler:         auditLogHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.AddPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.ReplacePatients).Methods(http.MethodPut)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.AddDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.ReplaceDoctors).Methods(http.MethodPut)

	// Schedule
	api.HandleFunc("/schedules/generate", r.scheduleHandler.GenerateSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedules/emergency", r.scheduleHandler.InsertEmergency).Methods(http.MethodPost)
	api.HandleFunc("/schedules", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/schedules", r.scheduleHandler.ReplaceSchedule).Methods(http.MethodPut)

	// Exports
	api.HandleFunc("/exports/{collection}", r.exportHandler.DownloadCSV).Methods(http.MethodGet)
	api.HandleFunc("/exports/{collection}", r.exportHandler.WriteFile).Methods(http.MethodPost)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// CORS preflight for every path
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
