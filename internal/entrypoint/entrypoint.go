package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/config"
	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/database/accounts"
	"github.com/wingmanapp/wingman/internal/database/drivers"
	"github.com/wingmanapp/wingman/internal/database/riderequests"
	"github.com/wingmanapp/wingman/internal/database/vehicletypes"
	http_controllers "github.com/wingmanapp/wingman/internal/http"
	"github.com/wingmanapp/wingman/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT/SIGTERM, then give in-flight
	// requests the configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the demo scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Wingman API v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Start the demo reset scheduler if demo mode is on
	var demoScheduler *scheduler.DemoResetScheduler
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - database resets on schedule '%s'", cfg.Demo.ResetSchedule)
		demoScheduler = scheduler.NewDemoResetScheduler(db, cfg.Demo.ResetSchedule)
		if err := demoScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start demo reset scheduler: %v", err)
		}
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Accounts:       accounts.NewRepository(db.DB),
		Drivers:        drivers.NewRepository(db.DB),
		VehicleTypes:   vehicletypes.NewRepository(db.DB),
		RideRequests:   riderequests.NewRepository(db.DB),
		AllowOrigins:   cfg.CORS.AllowOrigins,
		MetricsEnabled: cfg.Metrics.Enabled,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if demoScheduler != nil {
			demoScheduler.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
