package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wingmanapp/wingman/internal/database"
)

// RouterConfig carries the dependencies for all controllers. Passing one
// struct keeps the signature stable as stores are added and makes handler
// tests straightforward.
type RouterConfig struct {
	Database     *database.Database
	Accounts     AccountStore
	Drivers      DriverStore
	VehicleTypes VehicleTypeStore
	RideRequests RideRequestStore

	AllowOrigins   []string
	MetricsEnabled bool
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// The desktop shell and the browser pages run on different origins.
	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	if cfg.MetricsEnabled {
		router.Use(MetricsMiddleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	accounts := NewAccountsController(cfg.Accounts)
	drivers := NewDriversController(cfg.Drivers)
	vehicleTypes := NewVehicleTypesController(cfg.VehicleTypes)
	rideRequests := NewRideRequestsController(cfg.RideRequests)

	api := router.Group("/api")
	{
		api.POST("/accounts", accounts.CreateAccount)
		api.GET("/accounts/:email", accounts.GetAccount)
		api.PUT("/accounts/:email", accounts.UpdateAccount)
		api.DELETE("/accounts/:email", accounts.DeleteAccount)
		api.GET("/accounts/:email/payment-methods", accounts.ListPaymentMethods)

		api.GET("/drivers", drivers.ListDrivers)
		api.GET("/vehicle-types", vehicleTypes.ListVehicleTypes)

		api.POST("/ride-requests", rideRequests.CreateRideRequest)
		api.GET("/ride-requests/:id", rideRequests.GetRideRequest)
		api.PUT("/ride-requests/:id", rideRequests.UpdateRideRequest)
		api.DELETE("/ride-requests/:id", rideRequests.DeleteRideRequest)
	}

	return router
}
