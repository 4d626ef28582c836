// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pumpdesk/config"
	"pumpdesk/internal/delivery/api/middleware"
	"pumpdesk/internal/delivery/api/router/handler"
	"pumpdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthPath is the liveness probe route.
const HealthPath = "/health"

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	FuelPumpHandler *handler.FuelPumpHandler
	CustomerHandler *handler.CustomerHandler
	StaffHandler    *handler.StaffHandler
	FuelHandler     *handler.FuelHandler
	SalesHandler    *handler.SalesHandler
	BearerAuth      *middleware.BearerMiddleware
	AdminGuard      *middleware.AdminGuard
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	fuelPumpHandler *handler.FuelPumpHandler
	customerHandler *handler.CustomerHandler
	staffHandler    *handler.StaffHandler
	fuelHandler     *handler.FuelHandler
	salesHandler    *handler.SalesHandler
	bearerAuth      *middleware.BearerMiddleware
	adminGuard      *middleware.AdminGuard
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		fuelPumpHandler: params.FuelPumpHandler,
		customerHandler: params.CustomerHandler,
		staffHandler:    params.StaffHandler,
		fuelHandler:     params.FuelHandler,
		salesHandler:    params.SalesHandler,
		bearerAuth:      params.BearerAuth,
		adminGuard:      params.AdminGuard,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, handler.HealthCheck)
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Password reset confirmation, authenticated by the caller's bearer credential
	e.POST("/reset-password", r.authHandler.ConfirmReset, r.bearerAuth.Extract)

	// Administrative routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.adminGuard.Authorize)
	{
		adminGroup.POST("/reset-password", r.authHandler.RequestReset)
	}

	api := e.Group("/api")
	api.POST("/login", r.authHandler.Login)
	api.POST("/reset-password", r.authHandler.ConfirmReset, r.bearerAuth.Extract)

	pumpsGroup := api.Group("/fuel-pumps")
	{
		pumpsGroup.GET("", r.fuelPumpHandler.ListFuelPumps)
		pumpsGroup.GET("/:id", r.fuelPumpHandler.GetFuelPump)
		pumpsGroup.POST("", r.fuelPumpHandler.CreateFuelPump, r.adminGuard.Authorize)
	}

	customersGroup := api.Group("/customers")
	{
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.PATCH("/:id", r.customerHandler.UpdateCustomer)
	}

	vehiclesGroup := api.Group("/vehicles")
	{
		vehiclesGroup.GET("", r.customerHandler.ListVehicles)
		vehiclesGroup.POST("", r.customerHandler.CreateVehicle)
	}

	staffGroup := api.Group("/staff")
	{
		staffGroup.GET("", r.staffHandler.ListStaff)
		staffGroup.POST("", r.staffHandler.CreateStaff)
		staffGroup.GET("/:id", r.staffHandler.GetStaff)
	}

	shiftsGroup := api.Group("/shifts")
	{
		shiftsGroup.GET("", r.staffHandler.ListShifts)
		shiftsGroup.POST("", r.staffHandler.StartShift)
		shiftsGroup.POST("/:id/end", r.staffHandler.EndShift)
	}

	api.GET("/readings", r.fuelHandler.ListReadings)
	api.POST("/readings", r.fuelHandler.CreateReading)

	inventoryGroup := api.Group("/inventory")
	{
		inventoryGroup.GET("", r.fuelHandler.ListInventory)
		inventoryGroup.POST("", r.fuelHandler.CreateInventory)
		inventoryGroup.PATCH("/:id", r.fuelHandler.UpdateInventory)
	}

	api.GET("/consumables", r.fuelHandler.ListConsumables)
	api.POST("/consumables", r.fuelHandler.CreateConsumable)

	indentsGroup := api.Group("/indents")
	{
		indentsGroup.GET("", r.salesHandler.ListIndents)
		indentsGroup.POST("", r.salesHandler.CreateIndent)
		indentsGroup.GET("/:id", r.salesHandler.GetIndent)
		indentsGroup.GET("/:id/qr", r.salesHandler.IndentQR)
	}

	api.GET("/transactions", r.salesHandler.ListTransactions)
	api.POST("/transactions", r.salesHandler.CreateTransaction)

	api.GET("/reports/daily-sales", r.salesHandler.DailySales)
}
