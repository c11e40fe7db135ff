package repository

import (
	"context"
	"errors"

	"github.com/kirkespor-api/internal/database"
	"github.com/kirkespor-api/internal/models"
)

// ErrNotFound is returned when an update or delete target does not exist
// in its collection
var ErrNotFound = errors.New("record not found")

// Collection names for the five record kinds
const (
	CollectionEmployees = "employees"
	CollectionChurches  = "churches"
	CollectionServices  = "services"
	CollectionAbsences  = "absences"
	CollectionSettings  = "settings"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	ListActive(ctx context.Context) ([]*models.Employee, error)
	ListAll(ctx context.Context) ([]*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, id string, update *models.EmployeeUpdate) (*models.Employee, error)
	Deactivate(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, employees []*models.Employee) error
}

// ChurchRepository defines the interface for church data operations
type ChurchRepository interface {
	ListActive(ctx context.Context) ([]*models.Church, error)
	ListAll(ctx context.Context) ([]*models.Church, error)
	GetByID(ctx context.Context, id string) (*models.Church, error)
	Create(ctx context.Context, church *models.Church) error
	Update(ctx context.Context, id string, update *models.ChurchUpdate) (*models.Church, error)
	Deactivate(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, churches []*models.Church) error
}

// ServiceRepository defines the interface for service data operations.
// List with both startDate and endDate set returns only services whose date
// falls within the inclusive window; otherwise it returns everything.
type ServiceRepository interface {
	List(ctx context.Context, startDate, endDate string) ([]*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, id string, update *models.ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, services []*models.Service) error
}

// AbsenceRepository defines the interface for absence data operations.
// List with both startDate and endDate set returns only absences whose
// interval overlaps the inclusive window; otherwise it returns everything.
type AbsenceRepository interface {
	List(ctx context.Context, startDate, endDate string) ([]*models.Absence, error)
	GetByID(ctx context.Context, id string) (*models.Absence, error)
	Create(ctx context.Context, absence *models.Absence) error
	Update(ctx context.Context, id string, update *models.AbsenceUpdate) (*models.Absence, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, absences []*models.Absence) error
}

// SettingsRepository defines the interface for the settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Replace(ctx context.Context, settings *models.Settings) error
	Insert(ctx context.Context, settings *models.Settings) error
	DeleteAll(ctx context.Context) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Employee EmployeeRepository
	Church   ChurchRepository
	Service  ServiceRepository
	Absence  AbsenceRepository
	Settings SettingsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepo(db),
		Church:   NewChurchRepo(db),
		Service:  NewServiceRepo(db),
		Absence:  NewAbsenceRepo(db),
		Settings: NewSettingsRepo(db),
	}
}
