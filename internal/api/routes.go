package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/core"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/metrics"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// guards. Global middleware (logging, recovery, CORS, rate limiting,
// metrics) is expected to be applied to the router before this is called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	accountService core.AccountService,
	dataService core.DataService,
	historyService core.HistoryService,
	collector *metrics.Collector,
) {
	accountHandler := NewAccountHandler(accountService)
	dataHandler := NewDataHandler(dataService)
	historyHandler := NewHistoryHandler(historyService)
	sessionHandler := NewSessionHandler()

	apiGroup := router.Group("/api")
	{
		users := apiGroup.Group("/users", authMW.RequireAdmin())
		{
			users.GET("", accountHandler.ListUsers)
			users.DELETE("/:id", accountHandler.DeleteUser)
		}

		admins := apiGroup.Group("/admins", authMW.RequireSuperAdmin())
		{
			admins.GET("", accountHandler.ListAdmins)
			admins.POST("", accountHandler.CreateAdmin)
			admins.DELETE("/:id", accountHandler.DeleteAdmin)
		}

		// Read-only collections consumed by the dashboard. No role gate in
		// this variant; entries carry no credentials.
		data := apiGroup.Group("/data")
		{
			data.GET("/feedback", dataHandler.Feedback)
			data.GET("/issues", dataHandler.Issues)
		}

		apiGroup.GET("/history/:accountId", historyHandler.History)

		apiGroup.GET("/session", authMW.VerifyToken(), sessionHandler.Current)
		apiGroup.GET("/stats", authMW.RequireAdmin(), accountHandler.Stats)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	if collector != nil {
		router.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	logger.Info("API routes configured", zap.Int("routes", len(router.Routes())))
}
