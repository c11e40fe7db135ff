package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/service"
	"github.com/kirkespor-api/internal/validation"
	"github.com/rs/zerolog"
)

// DirectoryHandler handles employee and church endpoints
type DirectoryHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(services *service.Services, log zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		services:  services,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "directory").Logger(),
	}
}

// ListEmployees handles GET /api/employees
// Returns active employees ordered by position
func (h *DirectoryHandler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	employees, err := h.services.Directory.ListEmployees(ctx)
	if err != nil {
		storeError(c, h.log, err, "employee")
		return
	}
	if employees == nil {
		employees = []*models.Employee{}
	}

	c.JSON(http.StatusOK, employees)
}

// CreateEmployee handles POST /api/employees
func (h *DirectoryHandler) CreateEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.EmployeeCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateEmployeeCreate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	employee, err := h.services.Directory.CreateEmployee(ctx, &req)
	if err != nil {
		storeError(c, h.log, err, "employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee handles PUT /api/employees/:id
// Applies a sparse patch; absent fields are left untouched
func (h *DirectoryHandler) UpdateEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	employee, err := h.services.Directory.UpdateEmployee(ctx, id, &update)
	if err != nil {
		storeError(c, h.log, err, "employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/employees/:id
// Soft delete: the employee is marked inactive, not removed
func (h *DirectoryHandler) DeleteEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Directory.DeactivateEmployee(ctx, id); err != nil {
		storeError(c, h.log, err, "employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// ListChurches handles GET /api/churches
func (h *DirectoryHandler) ListChurches(c *gin.Context) {
	ctx := c.Request.Context()

	churches, err := h.services.Directory.ListChurches(ctx)
	if err != nil {
		storeError(c, h.log, err, "church")
		return
	}
	if churches == nil {
		churches = []*models.Church{}
	}

	c.JSON(http.StatusOK, churches)
}

// CreateChurch handles POST /api/churches
func (h *DirectoryHandler) CreateChurch(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ChurchCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := h.validator.ValidateChurchCreate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	church, err := h.services.Directory.CreateChurch(ctx, &req)
	if err != nil {
		storeError(c, h.log, err, "church")
		return
	}

	c.JSON(http.StatusOK, church)
}

// UpdateChurch handles PUT /api/churches/:id
func (h *DirectoryHandler) UpdateChurch(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.ChurchUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	church, err := h.services.Directory.UpdateChurch(ctx, id, &update)
	if err != nil {
		storeError(c, h.log, err, "church")
		return
	}

	c.JSON(http.StatusOK, church)
}

// DeleteChurch handles DELETE /api/churches/:id
// Soft delete: the church is marked inactive, not removed
func (h *DirectoryHandler) DeleteChurch(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Directory.DeactivateChurch(ctx, id); err != nil {
		storeError(c, h.log, err, "church")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Church deleted successfully"})
}
