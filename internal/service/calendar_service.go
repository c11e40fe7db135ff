package service

import (
	"context"

	"github.com/kirkespor-api/internal/dates"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
	"github.com/rs/zerolog"
)

// calendarService is the concrete implementation of CalendarService. It is
// the one service that fans out across all four entity collections.
type calendarService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCalendarService creates a new CalendarService
func newCalendarService(repos *repository.Repositories, log zerolog.Logger) *calendarService {
	return &calendarService{
		repos: repos,
		log:   log.With().Str("service", "calendar").Logger(),
	}
}

// Build produces the consolidated calendar view for the closed interval
// [start_date, end_date]: services inside the window, absences overlapping
// it, the active rosters and the day-by-day date axis. In compact mode the
// axis keeps only days carrying a service or absence.
func (s *calendarService) Build(ctx context.Context, req *models.CalendarRequest) (*models.CalendarResponse, error) {
	axis, err := dates.RangeStrings(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	services, err := s.repos.Service.List(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	absences, err := s.repos.Absence.List(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	employees, err := s.repos.Employee.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	churches, err := s.repos.Church.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if req.CompactMode {
		axis = compactAxis(axis, services, absences)
	}

	s.log.Debug().
		Str("start_date", req.StartDate).
		Str("end_date", req.EndDate).
		Bool("compact", req.CompactMode).
		Int("services", len(services)).
		Int("absences", len(absences)).
		Int("days", len(axis)).
		Msg("Calendar view built")

	return &models.CalendarResponse{
		Services:  services,
		Absences:  absences,
		Employees: employees,
		Churches:  churches,
		DateRange: axis,
	}, nil
}

// compactAxis filters the full date axis down to days that carry an event.
// Absence spans are expanded day by day; days outside the axis only grow the
// event-day set, the axis itself is never extended. Order is preserved.
func compactAxis(axis []string, services []*models.Service, absences []*models.Absence) []string {
	eventDays := make(map[string]bool)
	for _, service := range services {
		eventDays[service.Date] = true
	}
	for _, absence := range absences {
		start, err := dates.Parse(absence.StartDate)
		if err != nil {
			continue
		}
		end, err := dates.Parse(absence.EndDate)
		if err != nil {
			continue
		}
		for _, day := range dates.Range(start, end) {
			eventDays[day] = true
		}
	}

	compacted := make([]string, 0, len(axis))
	for _, day := range axis {
		if eventDays[day] {
			compacted = append(compacted, day)
		}
	}
	return compacted
}
