// File: seatadvisor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"seatadvisor/config"
	"seatadvisor/database"
	bookingRepoPkg "seatadvisor/database/repository/booking"
	seatRepoPkg "seatadvisor/database/repository/seat"
	"seatadvisor/handlers"
	"seatadvisor/middleware"
	"seatadvisor/routes"
	"seatadvisor/services/advisor"
	"seatadvisor/utils"
)

func main() {
	// .env is optional; real deployments inject environment variables.
	_ = godotenv.Load()

	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Repositories. The seat repository is wrapped with a Redis snapshot
	// cache so ranking requests don't hit Mongo on every call.
	cacheTTL := time.Duration(config.AppConfig.SeatCacheTTLSecs) * time.Second
	mongoSeatRepo := seatRepoPkg.NewMongoSeatRepo()
	seatRepo := seatRepoPkg.NewCachedSeatRepo(mongoSeatRepo, utils.GetCacheClient(), cacheTTL, logger)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	if err := seatRepo.EnsureSeeded(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed venue seats: %v", err)
	}

	// Conversation services.
	sessionTimeout := time.Duration(config.AppConfig.SessionTimeoutSeconds) * time.Second
	store := advisor.NewSessionStore(sessionTimeout, time.Now)

	keyword := advisor.NewKeywordProcessor(advisor.NewRandChooser(time.Now().UnixNano()))
	var primary advisor.Processor
	if config.AppConfig.EnableGemini && config.AppConfig.GeminiAPIKey != "" {
		gemini, err := advisor.NewGeminiProcessor(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, using keyword extraction only: %v", err)
		} else {
			primary = gemini
		}
	}
	processor := advisor.NewHybridProcessor(primary, keyword, logger)

	handlers.AdvisorService = advisor.NewAdvisor(store, processor, logger)
	handlers.SeatRepo = seatRepo
	handlers.BookingRepo = bookingRepo

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
