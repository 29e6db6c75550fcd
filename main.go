// File: quadrafacil/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quadrafacil/config"
	"quadrafacil/cron"
	"quadrafacil/database"
	bookingRepoPkg "quadrafacil/database/repository/booking"
	chatRepoPkg "quadrafacil/database/repository/chat"
	courtRepoPkg "quadrafacil/database/repository/court"
	matchRepoPkg "quadrafacil/database/repository/match"
	"quadrafacil/handlers"
	"quadrafacil/routes"
	"quadrafacil/services/booking"
	"quadrafacil/services/chat"
	"quadrafacil/services/identity"
	"quadrafacil/services/match"
	"quadrafacil/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitIdentityCache()

	firebaseDir, err := identity.NewFirebaseDirectory(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize identity directory: %v", err)
	}
	identityDir := &identity.CachedDirectory{
		Next:   firebaseDir,
		Cache:  utils.GetIdentityCacheClient(),
		TTL:    15 * time.Minute,
		Logger: logger,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	matchRepo := matchRepoPkg.NewMongoMatchRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// services.
	chatService := &chat.DefaultChatService{
		Chats:    chatRepo,
		Matches:  matchRepo,
		Courts:   courtRepo,
		Identity: identityDir,
		Logger:   logger,
	}

	matchService := &match.DefaultMatchService{
		Matches:  matchRepo,
		Bookings: bookingRepo,
		Courts:   courtRepo,
		Identity: identityDir,
		Bridge:   chatService,
		Logger:   logger,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:    bookingRepo,
		Courts:      courtRepo,
		Matches:     matchRepo,
		MatchEngine: matchService,
		Identity:    identityDir,
		Logger:      logger,
	}

	// Background chat-membership reconciliation.
	cron.InitReconcileWorker(matchRepo, chatService, logger)

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Bookings: bookingService,
		Matches:  matchService,
		Chats:    chatService,
		Logger:   logger,
	}
	routes.RegisterRoutes(router, handlerBundle)

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
