package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/service"
	"github.com/rs/zerolog"
)

// SettingsHandler handles the settings singleton endpoints
type SettingsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(services *service.Services, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		services: services,
		log:      log.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /api/settings
// Returns the stored settings, or the default shape if none exist
func (h *SettingsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.services.Settings.Get(ctx)
	if err != nil {
		storeError(c, h.log, err, "settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Replace handles POST /api/settings
// Replaces the settings singleton wholesale
func (h *SettingsHandler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings, err := h.services.Settings.Replace(ctx, &update)
	if err != nil {
		storeError(c, h.log, err, "settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
