package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirkespor-api/internal/config"
	"github.com/kirkespor-api/internal/repository"
	"github.com/kirkespor-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	directoryHandler := NewDirectoryHandler(services, log)
	scheduleHandler := NewScheduleHandler(services, log)
	calendarHandler := NewCalendarHandler(services, log)
	settingsHandler := NewSettingsHandler(services, log)
	backupHandler := NewBackupHandler(services, log)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck(services))
		api.GET("/metrics", metricsHandler(services))

		employees := api.Group("/employees")
		{
			employees.GET("", directoryHandler.ListEmployees)
			employees.POST("", directoryHandler.CreateEmployee)
			employees.PUT("/:id", directoryHandler.UpdateEmployee)
			employees.DELETE("/:id", directoryHandler.DeleteEmployee)
		}

		churches := api.Group("/churches")
		{
			churches.GET("", directoryHandler.ListChurches)
			churches.POST("", directoryHandler.CreateChurch)
			churches.PUT("/:id", directoryHandler.UpdateChurch)
			churches.DELETE("/:id", directoryHandler.DeleteChurch)
		}

		serviceRoutes := api.Group("/services")
		{
			serviceRoutes.GET("", scheduleHandler.ListServices)
			serviceRoutes.POST("", scheduleHandler.CreateService)
			serviceRoutes.PUT("/:id", scheduleHandler.UpdateService)
			serviceRoutes.DELETE("/:id", scheduleHandler.DeleteService)
		}

		absences := api.Group("/absences")
		{
			absences.GET("", scheduleHandler.ListAbsences)
			absences.POST("", scheduleHandler.CreateAbsence)
			absences.PUT("/:id", scheduleHandler.UpdateAbsence)
			absences.DELETE("/:id", scheduleHandler.DeleteAbsence)
		}

		api.POST("/calendar", calendarHandler.Build)

		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", settingsHandler.Replace)

		api.GET("/backup", backupHandler.Export)
		api.POST("/backup/import", backupHandler.Import)
	}

	return router
}

// healthCheck reports API and storage health; 503 when the store is
// unreachable
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := services.Health.Check(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	}
}

// metricsHandler returns per-collection document counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		counts, err := services.Count.Counts(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect counts"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"database":  counts,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// storeError maps storage errors to HTTP responses; the 404 message names
// the entity kind
func storeError(c *gin.Context, log zerolog.Logger, err error, entity string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	log.Error().Err(err).Str("entity", entity).Msg("Storage operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
