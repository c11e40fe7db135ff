package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/service"
	"github.com/rs/zerolog"
)

// BackupHandler handles full-database export and import
type BackupHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(services *service.Services, log zerolog.Logger) *BackupHandler {
	return &BackupHandler{
		services: services,
		log:      log.With().Str("handler", "backup").Logger(),
	}
}

// Export handles GET /api/backup
// Returns a snapshot of all five collections, soft-deleted records included
func (h *BackupHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	backup, err := h.services.Backup.Export(ctx)
	if err != nil {
		storeError(c, h.log, err, "backup")
		return
	}

	// Keep empty collections as [] on the wire
	if backup.Employees == nil {
		backup.Employees = []*models.Employee{}
	}
	if backup.Churches == nil {
		backup.Churches = []*models.Church{}
	}
	if backup.Services == nil {
		backup.Services = []*models.Service{}
	}
	if backup.Absences == nil {
		backup.Absences = []*models.Absence{}
	}

	c.JSON(http.StatusOK, backup)
}

// Import handles POST /api/backup/import
// Destructive: existing data is erased before the snapshot is inserted
func (h *BackupHandler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	var backup models.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid backup payload"})
		return
	}

	if err := h.services.Backup.Import(ctx, &backup); err != nil {
		if errors.Is(err, service.ErrImportFailed) {
			h.log.Error().Err(err).Msg("Backup import failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		storeError(c, h.log, err, "backup")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup imported successfully"})
}
