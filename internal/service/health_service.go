package service

import (
	"context"

	"github.com/kirkespor-api/internal/repository"
)

// healthService reports whether the document store answers a ping
type healthService struct {
	db Pinger
}

// newHealthService creates a new HealthService
func newHealthService(db Pinger) *healthService {
	return &healthService{db: db}
}

// Check pings the storage layer
func (s *healthService) Check(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}

// countService reports per-collection document counts for the metrics view
type countService struct {
	repos *repository.Repositories
}

// newCountService creates a new CountService
func newCountService(repos *repository.Repositories) *countService {
	return &countService{repos: repos}
}

// Counts returns the document count of each entity collection
func (s *countService) Counts(ctx context.Context) (map[string]int, error) {
	employees, err := s.repos.Employee.Count(ctx)
	if err != nil {
		return nil, err
	}
	churches, err := s.repos.Church.Count(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.repos.Service.Count(ctx)
	if err != nil {
		return nil, err
	}
	absences, err := s.repos.Absence.Count(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		repository.CollectionEmployees: employees,
		repository.CollectionChurches:  churches,
		repository.CollectionServices:  services,
		repository.CollectionAbsences:  absences,
	}, nil
}
