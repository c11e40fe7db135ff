package service

import (
	"context"

	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
	"github.com/rs/zerolog"
)

// directoryService is the concrete implementation of DirectoryService
type directoryService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newDirectoryService creates a new DirectoryService
func newDirectoryService(repos *repository.Repositories, log zerolog.Logger) *directoryService {
	return &directoryService{
		repos: repos,
		log:   log.With().Str("service", "directory").Logger(),
	}
}

// ListEmployees returns the active roster ordered by display position
func (s *directoryService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.repos.Employee.ListActive(ctx)
}

// CreateEmployee stores a new employee; active defaults to true
func (s *directoryService) CreateEmployee(ctx context.Context, req *models.EmployeeCreate) (*models.Employee, error) {
	employee := &models.Employee{
		Name:     req.Name,
		Active:   true,
		Position: req.Position,
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := s.repos.Employee.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", employee.ID).Str("name", employee.Name).Msg("Employee created")
	return employee, nil
}

// UpdateEmployee applies a sparse patch; fields absent from the patch are
// left untouched
func (s *directoryService) UpdateEmployee(ctx context.Context, id string, update *models.EmployeeUpdate) (*models.Employee, error) {
	return s.repos.Employee.Update(ctx, id, update)
}

// DeactivateEmployee soft-deletes an employee. The record persists and stays
// visible to direct lookups and backups.
func (s *directoryService) DeactivateEmployee(ctx context.Context, id string) error {
	if err := s.repos.Employee.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("employee_id", id).Msg("Employee deactivated")
	return nil
}

// ListChurches returns the active churches
func (s *directoryService) ListChurches(ctx context.Context) ([]*models.Church, error) {
	return s.repos.Church.ListActive(ctx)
}

// CreateChurch stores a new church; active defaults to true
func (s *directoryService) CreateChurch(ctx context.Context, req *models.ChurchCreate) (*models.Church, error) {
	church := &models.Church{
		Name:   req.Name,
		Active: true,
	}
	if req.Active != nil {
		church.Active = *req.Active
	}

	if err := s.repos.Church.Create(ctx, church); err != nil {
		return nil, err
	}

	s.log.Info().Str("church_id", church.ID).Str("name", church.Name).Msg("Church created")
	return church, nil
}

// UpdateChurch applies a sparse patch
func (s *directoryService) UpdateChurch(ctx context.Context, id string, update *models.ChurchUpdate) (*models.Church, error) {
	return s.repos.Church.Update(ctx, id, update)
}

// DeactivateChurch soft-deletes a church
func (s *directoryService) DeactivateChurch(ctx context.Context, id string) error {
	if err := s.repos.Church.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("church_id", id).Msg("Church deactivated")
	return nil
}
