package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/service"
	"github.com/kirkespor-api/internal/validation"
	"github.com/rs/zerolog"
)

// ScheduleHandler handles service and absence endpoints
type ScheduleHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(services *service.Services, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		services:  services,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "schedule").Logger(),
	}
}

// ListServices handles GET /api/services?start_date&end_date
// Filters by the inclusive date window only when both bounds are given
func (h *ScheduleHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	startDate, endDate, ok := h.dateWindow(c)
	if !ok {
		return
	}

	services, err := h.services.Schedule.ListServices(ctx, startDate, endDate)
	if err != nil {
		storeError(c, h.log, err, "service")
		return
	}
	if services == nil {
		services = []*models.Service{}
	}

	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/services
func (h *ScheduleHandler) CreateService(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateServiceCreate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.services.Schedule.CreateService(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		storeError(c, h.log, err, "service")
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateService handles PUT /api/services/:id
func (h *ScheduleHandler) UpdateService(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.ServiceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateServiceUpdate(&update); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	updated, err := h.services.Schedule.UpdateService(ctx, id, &update)
	if err != nil {
		storeError(c, h.log, err, "service")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteService handles DELETE /api/services/:id
// Hard delete: the record is permanently removed
func (h *ScheduleHandler) DeleteService(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Schedule.DeleteService(ctx, id); err != nil {
		storeError(c, h.log, err, "service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// ListAbsences handles GET /api/absences?start_date&end_date
// Returns absences overlapping the window when both bounds are given,
// otherwise all absences
func (h *ScheduleHandler) ListAbsences(c *gin.Context) {
	ctx := c.Request.Context()

	startDate, endDate, ok := h.dateWindow(c)
	if !ok {
		return
	}

	absences, err := h.services.Schedule.ListAbsences(ctx, startDate, endDate)
	if err != nil {
		storeError(c, h.log, err, "absence")
		return
	}
	if absences == nil {
		absences = []*models.Absence{}
	}

	c.JSON(http.StatusOK, absences)
}

// CreateAbsence handles POST /api/absences
func (h *ScheduleHandler) CreateAbsence(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.AbsenceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateAbsenceCreate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.services.Schedule.CreateAbsence(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		storeError(c, h.log, err, "absence")
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateAbsence handles PUT /api/absences/:id
func (h *ScheduleHandler) UpdateAbsence(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.AbsenceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateAbsenceUpdate(&update); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	updated, err := h.services.Schedule.UpdateAbsence(ctx, id, &update)
	if err != nil {
		storeError(c, h.log, err, "absence")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAbsence handles DELETE /api/absences/:id
// Hard delete: the record is permanently removed
func (h *ScheduleHandler) DeleteAbsence(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Schedule.DeleteAbsence(ctx, id); err != nil {
		storeError(c, h.log, err, "absence")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Absence deleted successfully"})
}

// dateWindow extracts the optional start_date/end_date query pair, rejecting
// malformed dates before they reach the lexical range queries. The window
// only applies when both bounds are present.
func (h *ScheduleHandler) dateWindow(c *gin.Context) (string, string, bool) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return "", "", true
	}

	req := models.CalendarRequest{StartDate: startDate, EndDate: endDate}
	if errs := h.validator.ValidateCalendarRequest(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return "", "", false
	}

	return startDate, endDate, true
}
