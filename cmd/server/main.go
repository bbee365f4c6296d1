package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/api"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/config"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/core"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/db"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/identity"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/metrics"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/middleware"
)

func main() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load application configuration", zap.Error(err))
	}

	// Firebase Admin SDK (Auth + Firestore). Clients are built once here and
	// injected; nothing mutates them after startup.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.InitFirebase(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	defer clients.Close()
	zapLogger.Info("Firebase Admin SDK initialized",
		zap.String("projectID", appConfig.FirebaseProjectID))

	// Repositories and services.
	feedbackRepo := db.NewFirestoreFeedbackRepository(clients.Firestore)
	issueRepo := db.NewFirestoreIssueRepository(clients.Firestore)
	historyRepo := db.NewFirestoreHistoryRepository(clients.Firestore)

	provider := identity.NewFirebaseProvider(clients.Auth)
	accountService := core.NewAccountService(provider)
	dataService := core.NewDataService(feedbackRepo, issueRepo)
	historyService := core.NewHistoryService(historyRepo)

	// Make sure the designated super admin account carries both claims.
	// Failure is logged but not fatal: the account may simply not exist yet.
	if appConfig.SuperAdminEmail != "" {
		bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
		if err := accountService.EnsureSuperAdmin(bootCtx, appConfig.SuperAdminEmail); err != nil {
			zapLogger.Warn("super admin bootstrap failed",
				zap.String("email", appConfig.SuperAdminEmail), zap.Error(err))
		} else {
			zapLogger.Info("super admin claims verified",
				zap.String("email", appConfig.SuperAdminEmail))
		}
		cancelBoot()
	}

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	collector := metrics.NewCollector()
	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer rateLimiter.Stop()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.Recovery(zapLogger))
	router.Use(collector.Middleware())
	router.Use(rateLimiter.Middleware())

	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS disabled: CLIENT_URL is not configured")
	}

	authMW := middleware.NewAuthMiddleware(clients.Auth)
	api.SetupRoutes(router, zapLogger, authMW, accountService, dataService, historyService, collector)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited gracefully")
}
