package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kirkespor-api/internal/config"
	"github.com/kirkespor-api/internal/mocks"
	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
	"github.com/kirkespor-api/internal/service"
	"github.com/rs/zerolog"
)

type fixture struct {
	services  *service.Services
	employees *mocks.MockEmployeeRepository
	churches  *mocks.MockChurchRepository
	svcRepo   *mocks.MockServiceRepository
	absences  *mocks.MockAbsenceRepository
	settings  *mocks.MockSettingsRepository
	pinger    *mocks.MockPinger
}

func newFixture(checkReferences bool) *fixture {
	f := &fixture{
		employees: mocks.NewMockEmployeeRepository(),
		churches:  mocks.NewMockChurchRepository(),
		svcRepo:   mocks.NewMockServiceRepository(),
		absences:  mocks.NewMockAbsenceRepository(),
		settings:  mocks.NewMockSettingsRepository(),
		pinger:    &mocks.MockPinger{},
	}

	repos := &repository.Repositories{
		Employee: f.employees,
		Church:   f.churches,
		Service:  f.svcRepo,
		Absence:  f.absences,
		Settings: f.settings,
	}

	cfg := &config.Config{
		Validation: config.ValidationConfig{CheckReferences: checkReferences},
	}

	f.services = service.NewServices(repos, f.pinger, cfg, zerolog.Nop())
	return f
}

func strPtr(s string) *string { return &s }

func TestDirectoryService_EmployeeLifecycle(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	created, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Kari", Position: 2})
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected a generated id")
	}
	if !created.Active {
		t.Error("Expected active to default to true")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected created_at to be stamped")
	}

	second, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Ola", Position: 1})
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	active, err := f.services.Directory.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("Expected 2 active employees, got %d", len(active))
	}
	if active[0].ID != second.ID || active[1].ID != created.ID {
		t.Errorf("Expected employees ordered by position, got %s then %s", active[0].Name, active[1].Name)
	}
}

func TestDirectoryService_SoftDelete(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	employee, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Kari"})
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	if err := f.services.Directory.DeactivateEmployee(ctx, employee.ID); err != nil {
		t.Fatalf("DeactivateEmployee failed: %v", err)
	}

	active, err := f.services.Directory.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Expected no active employees after soft delete, got %d", len(active))
	}

	// The record persists: direct lookup and backup export still see it
	stored, err := f.employees.GetByID(ctx, employee.ID)
	if err != nil {
		t.Fatalf("GetByID failed after soft delete: %v", err)
	}
	if stored.Active {
		t.Error("Expected active=false after soft delete")
	}

	backup, err := f.services.Backup.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(backup.Employees) != 1 {
		t.Fatalf("Expected backup to include soft-deleted employee, got %d employees", len(backup.Employees))
	}
	if backup.Employees[0].Active {
		t.Error("Expected exported employee to carry active=false")
	}
}

func TestDirectoryService_DeactivateUnknown(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	err := f.services.Directory.DeactivateEmployee(ctx, "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestScheduleService_SparseServicePatch(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	employeeID := "emp-1"
	created, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type:       models.ServiceTypeGudstjeneste,
		Date:       "2025-03-02",
		Time:       "11:00",
		EmployeeID: &employeeID,
		ChurchID:   "church-1",
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	updated, err := f.services.Schedule.UpdateService(ctx, created.ID, &models.ServiceUpdate{
		Notes: strPtr("bring the spare hymnals"),
	})
	if err != nil {
		t.Fatalf("UpdateService failed: %v", err)
	}

	if updated.Notes == nil || *updated.Notes != "bring the spare hymnals" {
		t.Error("Expected notes to be patched")
	}
	if updated.Date != "2025-03-02" || updated.Time != "11:00" {
		t.Errorf("Expected date/time untouched, got %s %s", updated.Date, updated.Time)
	}
	if updated.EmployeeID == nil || *updated.EmployeeID != employeeID {
		t.Error("Expected employee_id untouched")
	}
	if updated.ChurchID != "church-1" {
		t.Errorf("Expected church_id untouched, got %s", updated.ChurchID)
	}
}

func TestScheduleService_DeleteUnknownService(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	err := f.services.Schedule.DeleteService(ctx, "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestScheduleService_ReferenceCheckDisabled(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	// References are advisory: a dangling church_id is accepted
	_, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type:     models.ServiceTypeVielse,
		Date:     "2025-06-14",
		Time:     "13:00",
		ChurchID: "no-such-church",
	})
	if err != nil {
		t.Fatalf("Expected dangling reference to be accepted, got %v", err)
	}
}

func TestScheduleService_ReferenceCheckEnabled(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	_, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type:     models.ServiceTypeVielse,
		Date:     "2025-06-14",
		Time:     "13:00",
		ChurchID: "no-such-church",
	})
	if !errors.Is(err, service.ErrUnknownReference) {
		t.Fatalf("Expected ErrUnknownReference, got %v", err)
	}

	church, err := f.services.Directory.CreateChurch(ctx, &models.ChurchCreate{Name: "Domkirken"})
	if err != nil {
		t.Fatalf("CreateChurch failed: %v", err)
	}

	// Soft-deleted churches still count as referenceable
	if err := f.services.Directory.DeactivateChurch(ctx, church.ID); err != nil {
		t.Fatalf("DeactivateChurch failed: %v", err)
	}
	if _, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type:     models.ServiceTypeVielse,
		Date:     "2025-06-14",
		Time:     "13:00",
		ChurchID: church.ID,
	}); err != nil {
		t.Fatalf("Expected soft-deleted church to be referenceable, got %v", err)
	}

	_, err = f.services.Schedule.CreateAbsence(ctx, &models.AbsenceCreate{
		Type:       models.AbsenceTypeFerie,
		StartDate:  "2025-07-01",
		EndDate:    "2025-07-14",
		EmployeeID: "no-such-employee",
	})
	if !errors.Is(err, service.ErrUnknownReference) {
		t.Fatalf("Expected ErrUnknownReference for absence, got %v", err)
	}
}

func TestCalendarService_OverlapAndAxis(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if _, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Kari", Position: 1}); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if _, err := f.services.Directory.CreateChurch(ctx, &models.ChurchCreate{Name: "Domkirken"}); err != nil {
		t.Fatalf("CreateChurch failed: %v", err)
	}

	inWindow, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type: models.ServiceTypeGudstjeneste, Date: "2025-01-03", Time: "11:00", ChurchID: "c1",
	})
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if _, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type: models.ServiceTypeKonsert, Date: "2025-02-01", Time: "19:00", ChurchID: "c1",
	}); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	// Spans past the window end; overlap still holds
	if _, err := f.services.Schedule.CreateAbsence(ctx, &models.AbsenceCreate{
		Type: models.AbsenceTypeFerie, StartDate: "2025-01-05", EndDate: "2025-01-10", EmployeeID: "e1",
	}); err != nil {
		t.Fatalf("CreateAbsence failed: %v", err)
	}
	// Entirely outside the window
	if _, err := f.services.Schedule.CreateAbsence(ctx, &models.AbsenceCreate{
		Type: models.AbsenceTypeFrihelg, StartDate: "2025-03-01", EndDate: "2025-03-02", EmployeeID: "e1",
	}); err != nil {
		t.Fatalf("CreateAbsence failed: %v", err)
	}

	view, err := f.services.Calendar.Build(ctx, &models.CalendarRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-07",
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(view.Services) != 1 || view.Services[0].ID != inWindow.ID {
		t.Errorf("Expected only the in-window service, got %d", len(view.Services))
	}
	if len(view.Absences) != 1 {
		t.Errorf("Expected 1 overlapping absence, got %d", len(view.Absences))
	}
	if len(view.Employees) != 1 || len(view.Churches) != 1 {
		t.Errorf("Expected active rosters in the view")
	}
	if len(view.DateRange) != 7 {
		t.Fatalf("Expected 7-day axis, got %d", len(view.DateRange))
	}
	if view.DateRange[0] != "2025-01-01" || view.DateRange[6] != "2025-01-07" {
		t.Errorf("Unexpected axis bounds: %v", view.DateRange)
	}
}

func TestCalendarService_CompactMode(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if _, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type: models.ServiceTypeGudstjeneste, Date: "2025-01-03", Time: "11:00", ChurchID: "c1",
	}); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	if _, err := f.services.Schedule.CreateAbsence(ctx, &models.AbsenceCreate{
		Type: models.AbsenceTypeFerie, StartDate: "2025-01-05", EndDate: "2025-01-10", EmployeeID: "e1",
	}); err != nil {
		t.Fatalf("CreateAbsence failed: %v", err)
	}

	view, err := f.services.Calendar.Build(ctx, &models.CalendarRequest{
		StartDate:   "2025-01-01",
		EndDate:     "2025-01-07",
		CompactMode: true,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// The absence spills past the window; the axis stays clamped to it
	want := []string{"2025-01-03", "2025-01-05", "2025-01-06", "2025-01-07"}
	if len(view.DateRange) != len(want) {
		t.Fatalf("Expected compact axis %v, got %v", want, view.DateRange)
	}
	for i := range want {
		if view.DateRange[i] != want[i] {
			t.Errorf("Axis day %d: expected %s, got %s", i, want[i], view.DateRange[i])
		}
	}
}

func TestCalendarService_MalformedDates(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if _, err := f.services.Calendar.Build(ctx, &models.CalendarRequest{
		StartDate: "01-01-2025",
		EndDate:   "2025-01-07",
	}); err == nil {
		t.Error("Expected error for malformed start date")
	}
}

func TestCalendarService_ReversedWindow(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	view, err := f.services.Calendar.Build(ctx, &models.CalendarRequest{
		StartDate: "2025-01-07",
		EndDate:   "2025-01-01",
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(view.DateRange) != 0 {
		t.Errorf("Expected empty axis for reversed window, got %v", view.DateRange)
	}
}

func TestSettingsService_DefaultAndReplace(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	settings, err := f.services.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.InboxWidth != models.DefaultInboxWidth {
		t.Errorf("Expected default inbox width %d, got %d", models.DefaultInboxWidth, settings.InboxWidth)
	}

	replaced, err := f.services.Settings.Replace(ctx, &models.SettingsUpdate{InboxWidth: 220})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if replaced.InboxWidth != 220 {
		t.Errorf("Expected inbox width 220, got %d", replaced.InboxWidth)
	}
	if replaced.UpdatedAt == nil {
		t.Error("Expected updated_at to be stamped")
	}

	again, err := f.services.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.InboxWidth != 220 {
		t.Errorf("Expected stored inbox width 220, got %d", again.InboxWidth)
	}

	// A second replace overwrites the same singleton
	if _, err := f.services.Settings.Replace(ctx, &models.SettingsUpdate{InboxWidth: 240}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	final, err := f.services.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if final.InboxWidth != 240 {
		t.Errorf("Expected replaced inbox width 240, got %d", final.InboxWidth)
	}
	if final.ID != again.ID {
		t.Errorf("Expected singleton id %s to survive replacement, got %s", again.ID, final.ID)
	}
}

func TestBackupService_RoundTripIsDestructive(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if _, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Kari"}); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if _, err := f.services.Settings.Replace(ctx, &models.SettingsUpdate{InboxWidth: 200}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	backup, err := f.services.Backup.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Records added after the snapshot must vanish on import
	extra, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Ola"})
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if _, err := f.services.Schedule.CreateService(ctx, &models.ServiceCreate{
		Type: models.ServiceTypeAnnet, Date: "2025-05-17", Time: "10:00", ChurchID: "c1",
	}); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	if err := f.services.Backup.Import(ctx, backup); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	employees, err := f.employees.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("Expected 1 employee after import, got %d", len(employees))
	}
	if employees[0].ID == extra.ID {
		t.Error("Expected post-snapshot employee to be removed by import")
	}

	services, err := f.svcRepo.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(services) != 0 {
		t.Errorf("Expected services cleared by import, got %d", len(services))
	}

	settings, err := f.services.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.InboxWidth != 200 {
		t.Errorf("Expected snapshot settings restored, got inbox width %d", settings.InboxWidth)
	}
}

func TestBackupService_EmptySnapshotClearsEverything(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if _, err := f.services.Directory.CreateChurch(ctx, &models.ChurchCreate{Name: "Domkirken"}); err != nil {
		t.Fatalf("CreateChurch failed: %v", err)
	}

	if err := f.services.Backup.Import(ctx, &models.Backup{}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	churches, err := f.churches.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(churches) != 0 {
		t.Errorf("Expected churches cleared, got %d", len(churches))
	}
}

func TestBackupService_ImportFailureIsWrapped(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	f.svcRepo.InsertError = errors.New("write conflict")

	err := f.services.Backup.Import(ctx, &models.Backup{
		Services: []*models.Service{{ID: "s1", Type: models.ServiceTypeAnnet, Date: "2025-05-17", Time: "10:00", ChurchID: "c1"}},
	})
	if !errors.Is(err, service.ErrImportFailed) {
		t.Fatalf("Expected ErrImportFailed, got %v", err)
	}
}

func TestHealthService(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if err := f.services.Health.Check(ctx); err != nil {
		t.Fatalf("Expected healthy check, got %v", err)
	}

	f.pinger.PingError = errors.New("connection refused")
	if err := f.services.Health.Check(ctx); err == nil {
		t.Error("Expected check to fail when the store is unreachable")
	}
}

func TestCountService(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	if _, err := f.services.Directory.CreateEmployee(ctx, &models.EmployeeCreate{Name: "Kari"}); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if _, err := f.services.Schedule.CreateAbsence(ctx, &models.AbsenceCreate{
		Type: models.AbsenceTypeFerie, StartDate: "2025-07-01", EndDate: "2025-07-14", EmployeeID: "e1",
	}); err != nil {
		t.Fatalf("CreateAbsence failed: %v", err)
	}

	counts, err := f.services.Count.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts[repository.CollectionEmployees] != 1 {
		t.Errorf("Expected 1 employee, got %d", counts[repository.CollectionEmployees])
	}
	if counts[repository.CollectionAbsences] != 1 {
		t.Errorf("Expected 1 absence, got %d", counts[repository.CollectionAbsences])
	}
}
