package service

import (
	"context"
	"errors"

	"github.com/kirkespor-api/internal/config"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrUnknownReference is returned by the opt-in reference check when a
// create references a church or employee with no stored record
var ErrUnknownReference = errors.New("referenced record does not exist")

// ErrImportFailed wraps any error raised during a destructive backup import
var ErrImportFailed = errors.New("backup import failed")

// DirectoryService manages the employee and church rosters
type DirectoryService interface {
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	CreateEmployee(ctx context.Context, req *models.EmployeeCreate) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, update *models.EmployeeUpdate) (*models.Employee, error)
	DeactivateEmployee(ctx context.Context, id string) error
	ListChurches(ctx context.Context) ([]*models.Church, error)
	CreateChurch(ctx context.Context, req *models.ChurchCreate) (*models.Church, error)
	UpdateChurch(ctx context.Context, id string, update *models.ChurchUpdate) (*models.Church, error)
	DeactivateChurch(ctx context.Context, id string) error
}

// ScheduleService manages services and absences
type ScheduleService interface {
	ListServices(ctx context.Context, startDate, endDate string) ([]*models.Service, error)
	CreateService(ctx context.Context, req *models.ServiceCreate) (*models.Service, error)
	UpdateService(ctx context.Context, id string, update *models.ServiceUpdate) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	ListAbsences(ctx context.Context, startDate, endDate string) ([]*models.Absence, error)
	CreateAbsence(ctx context.Context, req *models.AbsenceCreate) (*models.Absence, error)
	UpdateAbsence(ctx context.Context, id string, update *models.AbsenceUpdate) (*models.Absence, error)
	DeleteAbsence(ctx context.Context, id string) error
}

// CalendarService builds the consolidated calendar view
type CalendarService interface {
	Build(ctx context.Context, req *models.CalendarRequest) (*models.CalendarResponse, error)
}

// SettingsService manages the settings singleton
type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Replace(ctx context.Context, update *models.SettingsUpdate) (*models.Settings, error)
}

// BackupService exports and destructively imports full database snapshots
type BackupService interface {
	Export(ctx context.Context) (*models.Backup, error)
	Import(ctx context.Context, backup *models.Backup) error
}

// HealthService reports storage reachability
type HealthService interface {
	Check(ctx context.Context) error
}

// CountService reports per-collection document counts
type CountService interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// Pinger verifies the storage connection is healthy
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Services holds all service interfaces
type Services struct {
	Directory DirectoryService
	Schedule  ScheduleService
	Calendar  CalendarService
	Settings  SettingsService
	Backup    BackupService
	Health    HealthService
	Count     CountService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, db Pinger, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Directory: newDirectoryService(repos, log),
		Schedule:  newScheduleService(repos, cfg, log),
		Calendar:  newCalendarService(repos, log),
		Settings:  newSettingsService(repos, log),
		Backup:    newBackupService(repos, log),
		Health:    newHealthService(db),
		Count:     newCountService(repos),
	}
}
