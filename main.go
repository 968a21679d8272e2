// @title           AMC Analytics API
// @version         1.0
// @description     Annual maintenance contract coverage and statistics endpoints.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amcbackend/config"
	_ "amcbackend/docs"
	"amcbackend/handlers"
	"amcbackend/repository"
	"amcbackend/services"
	"amcbackend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "Accept", "Origin",
		"X-Requested-With", "Authorization", "Cache-Control", "X-Request-ID",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS", "HEAD"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set. Every /api request will be rejected.")
	}

	db, err := storage.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	gormDB, err := storage.InitGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	repo := repository.NewAMCRepository(db, gormDB)

	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	if cfg.SnapshotCron != "" {
		job := services.NewSnapshotJob(repo, cfg.SnapshotSiteIDs, cfg.SummaryPolicy)
		if _, err := c.AddFunc(cfg.SnapshotCron, job.Trigger); err != nil {
			log.Fatalf("Failed to schedule coverage snapshot cron job: %v", err)
		}
		log.Printf("Coverage snapshot scheduled at %q", cfg.SnapshotCron)
	}
	c.Start()

	r := gin.Default()
	r.Use(cors.New(CORSConfig(cfg.CORSOrigins)))
	r.Use(handlers.RequestID())

	r.GET("/health", handlers.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// ==================== AMC ANALYTICS ====================
	amc := r.Group("/api/amc", handlers.AuthMiddleware(cfg.JWTSecret))
	amc.GET("/coverage_by_location", handlers.GetAMCCoverageByLocation(repo, cfg.SummaryPolicy))
	amc.GET("/coverage_by_location/export.xlsx", handlers.ExportAMCCoverageXLSX(repo, cfg.SummaryPolicy))
	amc.GET("/coverage_by_location/export.pdf", handlers.ExportAMCCoveragePDF(repo, cfg.SummaryPolicy))
	amc.GET("/coverage_stats", handlers.GetAMCCoverageStats(repo, cfg.SummaryPolicy))
	amc.POST("/coverage_rollup", handlers.RollupAMCCoverage(cfg.SummaryPolicy))
	amc.GET("/coverage_snapshots", handlers.GetAMCCoverageSnapshots(repo))
	amc.GET("/status", handlers.GetAMCStatus(repo))
	amc.GET("/breakdown_vs_preventive", handlers.GetAMCBreakdownVsPreventive(repo))
	amc.GET("/unit_resource_wise", handlers.GetAMCUnitResourceWise(repo))
	amc.GET("/service_stats", handlers.GetAMCServiceStats(repo))
	amc.GET("/expiry_analysis", handlers.GetAMCExpiryAnalysis(repo))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on :%s (summary policy %s)", cfg.Port, cfg.SummaryPolicy)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Wait for a running snapshot before closing the pool under it.
	cronCtx := c.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
		log.Println("Warning: coverage snapshot still running at shutdown")
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
