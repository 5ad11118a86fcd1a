// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"parkly/internal/domain/orders"
	"parkly/internal/domain/reports"
	"parkly/internal/infrastructure/http/v1/handlers"
	"parkly/internal/infrastructure/http/v1/middleware"
	"parkly/internal/infrastructure/storage/postgres"
	"parkly/internal/infrastructure/storage/postgres/entity_repo"
	"parkly/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool   *postgres.Pool
	DB     *postgres.DB
	Logger *logger.Logger

	// Development enables verbose Gin output
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Repositories
	clientRepo := entity_repo.NewClientRepo(cfg.DB)
	employeeRepo := entity_repo.NewEmployeeRepo(cfg.DB)
	zoneRepo := entity_repo.NewZoneRepo(cfg.DB)
	attractionRepo := entity_repo.NewAttractionRepo(cfg.DB)
	offeringRepo := entity_repo.NewOfferingRepo(cfg.DB)
	orderRepo := entity_repo.NewOrderRepo(cfg.DB)
	ticketRepo := entity_repo.NewTicketRepo(cfg.DB)
	paymentRepo := entity_repo.NewPaymentRepo(cfg.DB)

	// Ticket repo serves both sales and attendance report data; reports run
	// inside a read-only snapshot transaction.
	reportService := reports.NewService(orderRepo, ticketRepo, paymentRepo, clientRepo, ticketRepo, cfg.DB)
	orderService := orders.NewService(cfg.DB, orderRepo, ticketRepo)

	base := handlers.NewBaseHandler()

	api := router.Group("/api/v1")
	{
		handlers.NewClientsHandler(base, clientRepo).Register(api.Group("/clients"))
		handlers.NewEmployeesHandler(base, employeeRepo).Register(api.Group("/employees"))
		handlers.NewZonesHandler(base, zoneRepo, attractionRepo, employeeRepo).Register(api.Group("/zones"))
		handlers.NewAttractionsHandler(base, attractionRepo).Register(api.Group("/attractions"))
		handlers.NewOfferingsHandler(base, offeringRepo).Register(api.Group("/offerings"))
		handlers.NewOrdersHandler(base, orderRepo, orderService, ticketRepo, paymentRepo).Register(api.Group("/orders"))
		handlers.NewTicketsHandler(base, ticketRepo).Register(api.Group("/tickets"))

		reportsHandler := handlers.NewReportsHandler(base, reportService)
		rg := api.Group("/reports")
		{
			rg.GET("/sales", reportsHandler.GetSales)
			rg.GET("/users", reportsHandler.GetUsers)
			rg.GET("/attendance", reportsHandler.GetAttendance)
		}
	}

	return router
}
