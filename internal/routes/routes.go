package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/2025renato/agenda-pet-api/internal/audit"
	"github.com/2025renato/agenda-pet-api/internal/handlers"
	"github.com/2025renato/agenda-pet-api/internal/kvstore"
	"github.com/2025renato/agenda-pet-api/internal/middleware"
	"github.com/2025renato/agenda-pet-api/internal/store"
	ucSchedule "github.com/2025renato/agenda-pet-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, kv kvstore.Store, auditLogger *audit.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// STORES (SINGLETONS, DONOS DAS DUAS LISTAS)
	// ======================================================
	clientStore := store.NewClientStore(kv)
	appointmentStore := store.NewAppointmentStore(kv)

	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucSchedule.NewCreateAppointment(
		clientStore,
		appointmentStore,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientStore, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentStore,
		createAppointmentUC,
		auditDispatcher,
	)
	scheduleHandler := handlers.NewScheduleHandler()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTES
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Save)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/day", appointmentHandler.ListByDay)
		api.GET("/appointments/client", appointmentHandler.ListByClient)
		api.POST("/appointments", appointmentHandler.Create)
		api.DELETE("/appointments/by-match", appointmentHandler.DeleteByMatch)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// CATÁLOGO (SERVIÇOS E HORÁRIOS)
		// ------------------------------
		api.GET("/schedule/options", scheduleHandler.Options)
	}
}
