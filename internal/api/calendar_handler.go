package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/service"
	"github.com/kirkespor-api/internal/validation"
	"github.com/rs/zerolog"
)

// CalendarHandler handles the calendar aggregation endpoint
type CalendarHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(services *service.Services, log zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{
		services:  services,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "calendar").Logger(),
	}
}

// Build handles POST /api/calendar
// Returns the consolidated calendar view for the requested interval
func (h *CalendarHandler) Build(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateCalendarRequest(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	view, err := h.services.Calendar.Build(ctx, &req)
	if err != nil {
		storeError(c, h.log, err, "calendar")
		return
	}

	// Keep empty collections as [] on the wire
	if view.Services == nil {
		view.Services = []*models.Service{}
	}
	if view.Absences == nil {
		view.Absences = []*models.Absence{}
	}
	if view.Employees == nil {
		view.Employees = []*models.Employee{}
	}
	if view.Churches == nil {
		view.Churches = []*models.Church{}
	}
	if view.DateRange == nil {
		view.DateRange = []string{}
	}

	c.JSON(http.StatusOK, view)
}
