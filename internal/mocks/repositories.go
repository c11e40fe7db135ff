package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
)

// MockPinger is a mock storage health check
type MockPinger struct {
	PingError error
}

func (m *MockPinger) HealthCheck(ctx context.Context) error {
	return m.PingError
}

// MockEmployeeRepository is an in-memory implementation of EmployeeRepository
type MockEmployeeRepository struct {
	Employees   map[string]*models.Employee
	InsertError error
}

func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{Employees: make(map[string]*models.Employee)}
}

func (m *MockEmployeeRepository) ListActive(ctx context.Context) ([]*models.Employee, error) {
	var active []*models.Employee
	for _, e := range m.Employees {
		if e.Active {
			active = append(active, e)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Position < active[j].Position })
	return active, nil
}

func (m *MockEmployeeRepository) ListAll(ctx context.Context) ([]*models.Employee, error) {
	all := make([]*models.Employee, 0, len(m.Employees))
	for _, e := range m.Employees {
		all = append(all, e)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	e, ok := m.Employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	employee.ID = uuid.New().String()
	employee.CreatedAt = time.Now().UTC()
	m.Employees[employee.ID] = employee
	return nil
}

func (m *MockEmployeeRepository) Update(ctx context.Context, id string, update *models.EmployeeUpdate) (*models.Employee, error) {
	e, ok := m.Employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		e.Name = *update.Name
	}
	if update.Active != nil {
		e.Active = *update.Active
	}
	if update.Position != nil {
		e.Position = *update.Position
	}
	return e, nil
}

func (m *MockEmployeeRepository) Deactivate(ctx context.Context, id string) error {
	e, ok := m.Employees[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.Active = false
	return nil
}

func (m *MockEmployeeRepository) Count(ctx context.Context) (int, error) {
	return len(m.Employees), nil
}

func (m *MockEmployeeRepository) DeleteAll(ctx context.Context) error {
	m.Employees = make(map[string]*models.Employee)
	return nil
}

func (m *MockEmployeeRepository) InsertMany(ctx context.Context, employees []*models.Employee) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	for _, e := range employees {
		m.Employees[e.ID] = e
	}
	return nil
}

// MockChurchRepository is an in-memory implementation of ChurchRepository
type MockChurchRepository struct {
	Churches    map[string]*models.Church
	InsertError error
}

func NewMockChurchRepository() *MockChurchRepository {
	return &MockChurchRepository{Churches: make(map[string]*models.Church)}
}

func (m *MockChurchRepository) ListActive(ctx context.Context) ([]*models.Church, error) {
	var active []*models.Church
	for _, c := range m.Churches {
		if c.Active {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (m *MockChurchRepository) ListAll(ctx context.Context) ([]*models.Church, error) {
	all := make([]*models.Church, 0, len(m.Churches))
	for _, c := range m.Churches {
		all = append(all, c)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (m *MockChurchRepository) GetByID(ctx context.Context, id string) (*models.Church, error) {
	c, ok := m.Churches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *MockChurchRepository) Create(ctx context.Context, church *models.Church) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	church.ID = uuid.New().String()
	church.CreatedAt = time.Now().UTC()
	m.Churches[church.ID] = church
	return nil
}

func (m *MockChurchRepository) Update(ctx context.Context, id string, update *models.ChurchUpdate) (*models.Church, error) {
	c, ok := m.Churches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Active != nil {
		c.Active = *update.Active
	}
	return c, nil
}

func (m *MockChurchRepository) Deactivate(ctx context.Context, id string) error {
	c, ok := m.Churches[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Active = false
	return nil
}

func (m *MockChurchRepository) Count(ctx context.Context) (int, error) {
	return len(m.Churches), nil
}

func (m *MockChurchRepository) DeleteAll(ctx context.Context) error {
	m.Churches = make(map[string]*models.Church)
	return nil
}

func (m *MockChurchRepository) InsertMany(ctx context.Context, churches []*models.Church) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	for _, c := range churches {
		m.Churches[c.ID] = c
	}
	return nil
}

// MockServiceRepository is an in-memory implementation of ServiceRepository
type MockServiceRepository struct {
	Services    map[string]*models.Service
	InsertError error
}

func NewMockServiceRepository() *MockServiceRepository {
	return &MockServiceRepository{Services: make(map[string]*models.Service)}
}

func (m *MockServiceRepository) List(ctx context.Context, startDate, endDate string) ([]*models.Service, error) {
	var services []*models.Service
	for _, s := range m.Services {
		if startDate != "" && endDate != "" {
			if s.Date < startDate || s.Date > endDate {
				continue
			}
		}
		services = append(services, s)
	}
	sort.SliceStable(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := m.Services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (m *MockServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	service.ID = uuid.New().String()
	service.CreatedAt = time.Now().UTC()
	m.Services[service.ID] = service
	return nil
}

func (m *MockServiceRepository) Update(ctx context.Context, id string, update *models.ServiceUpdate) (*models.Service, error) {
	s, ok := m.Services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Type != nil {
		s.Type = *update.Type
	}
	if update.Date != nil {
		s.Date = *update.Date
	}
	if update.Time != nil {
		s.Time = *update.Time
	}
	if update.EmployeeID != nil {
		s.EmployeeID = update.EmployeeID
	}
	if update.ChurchID != nil {
		s.ChurchID = *update.ChurchID
	}
	if update.Notes != nil {
		s.Notes = update.Notes
	}
	return s, nil
}

func (m *MockServiceRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Services[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Services, id)
	return nil
}

func (m *MockServiceRepository) Count(ctx context.Context) (int, error) {
	return len(m.Services), nil
}

func (m *MockServiceRepository) DeleteAll(ctx context.Context) error {
	m.Services = make(map[string]*models.Service)
	return nil
}

func (m *MockServiceRepository) InsertMany(ctx context.Context, services []*models.Service) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	for _, s := range services {
		m.Services[s.ID] = s
	}
	return nil
}

// MockAbsenceRepository is an in-memory implementation of AbsenceRepository
type MockAbsenceRepository struct {
	Absences    map[string]*models.Absence
	InsertError error
}

func NewMockAbsenceRepository() *MockAbsenceRepository {
	return &MockAbsenceRepository{Absences: make(map[string]*models.Absence)}
}

func (m *MockAbsenceRepository) List(ctx context.Context, startDate, endDate string) ([]*models.Absence, error) {
	var absences []*models.Absence
	for _, a := range m.Absences {
		if startDate != "" && endDate != "" {
			if a.StartDate > endDate || a.EndDate < startDate {
				continue
			}
		}
		absences = append(absences, a)
	}
	sort.SliceStable(absences, func(i, j int) bool { return absences[i].ID < absences[j].ID })
	return absences, nil
}

func (m *MockAbsenceRepository) GetByID(ctx context.Context, id string) (*models.Absence, error) {
	a, ok := m.Absences[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *MockAbsenceRepository) Create(ctx context.Context, absence *models.Absence) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	absence.ID = uuid.New().String()
	absence.CreatedAt = time.Now().UTC()
	m.Absences[absence.ID] = absence
	return nil
}

func (m *MockAbsenceRepository) Update(ctx context.Context, id string, update *models.AbsenceUpdate) (*models.Absence, error) {
	a, ok := m.Absences[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Type != nil {
		a.Type = *update.Type
	}
	if update.StartDate != nil {
		a.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		a.EndDate = *update.EndDate
	}
	if update.EmployeeID != nil {
		a.EmployeeID = *update.EmployeeID
	}
	if update.Notes != nil {
		a.Notes = update.Notes
	}
	return a, nil
}

func (m *MockAbsenceRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Absences[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Absences, id)
	return nil
}

func (m *MockAbsenceRepository) Count(ctx context.Context) (int, error) {
	return len(m.Absences), nil
}

func (m *MockAbsenceRepository) DeleteAll(ctx context.Context) error {
	m.Absences = make(map[string]*models.Absence)
	return nil
}

func (m *MockAbsenceRepository) InsertMany(ctx context.Context, absences []*models.Absence) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	for _, a := range absences {
		m.Absences[a.ID] = a
	}
	return nil
}

// MockSettingsRepository is an in-memory implementation of SettingsRepository
type MockSettingsRepository struct {
	Stored      *models.Settings
	InsertError error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	if m.Stored == nil {
		return models.DefaultSettings(), nil
	}
	return m.Stored, nil
}

func (m *MockSettingsRepository) Replace(ctx context.Context, settings *models.Settings) error {
	if m.Stored != nil {
		settings.ID = m.Stored.ID
	} else if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	settings.UpdatedAt = &now
	m.Stored = settings
	return nil
}

func (m *MockSettingsRepository) Insert(ctx context.Context, settings *models.Settings) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Stored = settings
	return nil
}

func (m *MockSettingsRepository) DeleteAll(ctx context.Context) error {
	m.Stored = nil
	return nil
}
