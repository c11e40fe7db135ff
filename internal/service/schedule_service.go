package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirkespor-api/internal/config"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
	"github.com/rs/zerolog"
)

// scheduleService is the concrete implementation of ScheduleService
type scheduleService struct {
	repos           *repository.Repositories
	checkReferences bool
	log             zerolog.Logger
}

// newScheduleService creates a new ScheduleService
func newScheduleService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *scheduleService {
	return &scheduleService{
		repos:           repos,
		checkReferences: cfg.Validation.CheckReferences,
		log:             log.With().Str("service", "schedule").Logger(),
	}
}

// ListServices returns services, filtered to the inclusive date window when
// both bounds are given
func (s *scheduleService) ListServices(ctx context.Context, startDate, endDate string) ([]*models.Service, error) {
	return s.repos.Service.List(ctx, startDate, endDate)
}

// CreateService stores a new scheduled service. A nil employee id leaves the
// service in the unassigned inbox.
func (s *scheduleService) CreateService(ctx context.Context, req *models.ServiceCreate) (*models.Service, error) {
	if s.checkReferences {
		if err := s.checkChurchRef(ctx, req.ChurchID); err != nil {
			return nil, err
		}
		if req.EmployeeID != nil {
			if err := s.checkEmployeeRef(ctx, *req.EmployeeID); err != nil {
				return nil, err
			}
		}
	}

	service := &models.Service{
		Type:       req.Type,
		Date:       req.Date,
		Time:       req.Time,
		EmployeeID: req.EmployeeID,
		ChurchID:   req.ChurchID,
		Notes:      req.Notes,
	}

	if err := s.repos.Service.Create(ctx, service); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("service_id", service.ID).
		Str("type", service.Type).
		Str("date", service.Date).
		Msg("Service created")
	return service, nil
}

// UpdateService applies a sparse patch
func (s *scheduleService) UpdateService(ctx context.Context, id string, update *models.ServiceUpdate) (*models.Service, error) {
	return s.repos.Service.Update(ctx, id, update)
}

// DeleteService permanently removes a service
func (s *scheduleService) DeleteService(ctx context.Context, id string) error {
	if err := s.repos.Service.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("service_id", id).Msg("Service deleted")
	return nil
}

// ListAbsences returns absences, filtered to those overlapping the inclusive
// window when both bounds are given
func (s *scheduleService) ListAbsences(ctx context.Context, startDate, endDate string) ([]*models.Absence, error) {
	return s.repos.Absence.List(ctx, startDate, endDate)
}

// CreateAbsence stores a new absence
func (s *scheduleService) CreateAbsence(ctx context.Context, req *models.AbsenceCreate) (*models.Absence, error) {
	if s.checkReferences {
		if err := s.checkEmployeeRef(ctx, req.EmployeeID); err != nil {
			return nil, err
		}
	}

	absence := &models.Absence{
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		EmployeeID: req.EmployeeID,
		Notes:      req.Notes,
	}

	if err := s.repos.Absence.Create(ctx, absence); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("absence_id", absence.ID).
		Str("type", absence.Type).
		Str("employee_id", absence.EmployeeID).
		Msg("Absence created")
	return absence, nil
}

// UpdateAbsence applies a sparse patch
func (s *scheduleService) UpdateAbsence(ctx context.Context, id string, update *models.AbsenceUpdate) (*models.Absence, error) {
	return s.repos.Absence.Update(ctx, id, update)
}

// DeleteAbsence permanently removes an absence
func (s *scheduleService) DeleteAbsence(ctx context.Context, id string) error {
	if err := s.repos.Absence.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("absence_id", id).Msg("Absence deleted")
	return nil
}

// checkChurchRef verifies the referenced church exists. Soft-deleted churches
// still count as referenceable.
func (s *scheduleService) checkChurchRef(ctx context.Context, id string) error {
	_, err := s.repos.Church.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("church %s: %w", id, ErrUnknownReference)
	}
	return err
}

// checkEmployeeRef verifies the referenced employee exists. Soft-deleted
// employees still count as referenceable.
func (s *scheduleService) checkEmployeeRef(ctx context.Context, id string) error {
	_, err := s.repos.Employee.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("employee %s: %w", id, ErrUnknownReference)
	}
	return err
}
