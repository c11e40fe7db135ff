package validation_test

import (
	"testing"

	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/validation"
)

func strPtr(s string) *string { return &s }

func fieldNames(errs []validation.FieldError) map[string]bool {
	fields := make(map[string]bool, len(errs))
	for _, e := range errs {
		fields[e.Field] = true
	}
	return fields
}

func TestValidateEmployeeCreate(t *testing.T) {
	v := validation.NewValidator()

	if errs := v.ValidateEmployeeCreate(&models.EmployeeCreate{Name: "Kari"}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	errs := v.ValidateEmployeeCreate(&models.EmployeeCreate{})
	if !fieldNames(errs)["name"] {
		t.Errorf("Expected name error, got %v", errs)
	}
}

func TestValidateChurchCreate(t *testing.T) {
	v := validation.NewValidator()

	errs := v.ValidateChurchCreate(&models.ChurchCreate{})
	if !fieldNames(errs)["name"] {
		t.Errorf("Expected name error, got %v", errs)
	}
}

func TestValidateServiceCreate(t *testing.T) {
	v := validation.NewValidator()

	tests := []struct {
		name       string
		req        models.ServiceCreate
		wantFields []string
	}{
		{
			name: "valid",
			req: models.ServiceCreate{
				Type: models.ServiceTypeGudstjeneste, Date: "2025-03-02", Time: "11:00", ChurchID: "c1",
			},
		},
		{
			name:       "missing everything",
			req:        models.ServiceCreate{},
			wantFields: []string{"type", "date", "time", "church_id"},
		},
		{
			name: "bad date format",
			req: models.ServiceCreate{
				Type: models.ServiceTypeKonsert, Date: "02.03.2025", Time: "19:00", ChurchID: "c1",
			},
			wantFields: []string{"date"},
		},
		{
			name: "ambiguous short date",
			req: models.ServiceCreate{
				Type: models.ServiceTypeKonsert, Date: "2025-3-2", Time: "19:00", ChurchID: "c1",
			},
			wantFields: []string{"date"},
		},
		{
			name: "bad time format",
			req: models.ServiceCreate{
				Type: models.ServiceTypeKonsert, Date: "2025-03-02", Time: "7pm", ChurchID: "c1",
			},
			wantFields: []string{"time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateServiceCreate(&tt.req)
			if len(tt.wantFields) == 0 && len(errs) != 0 {
				t.Fatalf("Expected no errors, got %v", errs)
			}
			got := fieldNames(errs)
			for _, field := range tt.wantFields {
				if !got[field] {
					t.Errorf("Expected error on %s, got %v", field, errs)
				}
			}
		})
	}
}

func TestValidateServiceCreate_TypeNotEnumChecked(t *testing.T) {
	v := validation.NewValidator()

	// The type field is free-form; unknown values pass
	errs := v.ValidateServiceCreate(&models.ServiceCreate{
		Type: "Dugnad", Date: "2025-03-02", Time: "11:00", ChurchID: "c1",
	})
	if len(errs) != 0 {
		t.Errorf("Expected free-form type to pass, got %v", errs)
	}
}

func TestValidateServiceUpdate(t *testing.T) {
	v := validation.NewValidator()

	if errs := v.ValidateServiceUpdate(&models.ServiceUpdate{}); len(errs) != 0 {
		t.Errorf("Expected empty patch to pass, got %v", errs)
	}

	errs := v.ValidateServiceUpdate(&models.ServiceUpdate{Date: strPtr("next sunday")})
	if !fieldNames(errs)["date"] {
		t.Errorf("Expected date error, got %v", errs)
	}

	errs = v.ValidateServiceUpdate(&models.ServiceUpdate{Time: strPtr("25:00")})
	if !fieldNames(errs)["time"] {
		t.Errorf("Expected time error, got %v", errs)
	}
}

func TestValidateAbsenceCreate(t *testing.T) {
	v := validation.NewValidator()

	if errs := v.ValidateAbsenceCreate(&models.AbsenceCreate{
		Type: models.AbsenceTypeFerie, StartDate: "2025-07-01", EndDate: "2025-07-14", EmployeeID: "e1",
	}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	errs := v.ValidateAbsenceCreate(&models.AbsenceCreate{})
	got := fieldNames(errs)
	for _, field := range []string{"type", "start_date", "end_date", "employee_id"} {
		if !got[field] {
			t.Errorf("Expected error on %s, got %v", field, errs)
		}
	}

	// Interval ordering is not validated
	if errs := v.ValidateAbsenceCreate(&models.AbsenceCreate{
		Type: models.AbsenceTypeFerie, StartDate: "2025-07-14", EndDate: "2025-07-01", EmployeeID: "e1",
	}); len(errs) != 0 {
		t.Errorf("Expected reversed interval to pass, got %v", errs)
	}
}

func TestValidateAbsenceUpdate(t *testing.T) {
	v := validation.NewValidator()

	errs := v.ValidateAbsenceUpdate(&models.AbsenceUpdate{StartDate: strPtr("2025-13-40")})
	if !fieldNames(errs)["start_date"] {
		t.Errorf("Expected start_date error, got %v", errs)
	}
}

func TestValidateCalendarRequest(t *testing.T) {
	v := validation.NewValidator()

	if errs := v.ValidateCalendarRequest(&models.CalendarRequest{
		StartDate: "2025-01-01", EndDate: "2025-01-07",
	}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	errs := v.ValidateCalendarRequest(&models.CalendarRequest{})
	got := fieldNames(errs)
	if !got["start_date"] || !got["end_date"] {
		t.Errorf("Expected both bounds required, got %v", errs)
	}

	errs = v.ValidateCalendarRequest(&models.CalendarRequest{
		StartDate: "2025-01-01", EndDate: "2025-02-30",
	})
	if !fieldNames(errs)["end_date"] {
		t.Errorf("Expected impossible calendar day rejected, got %v", errs)
	}
}
