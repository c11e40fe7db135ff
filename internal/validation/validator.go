package validation

import (
	"fmt"
	"time"

	"github.com/kirkespor-api/internal/dates"
	"github.com/kirkespor-api/internal/models"
)

// timeLayout is the hour:minute format used for service times
const timeLayout = "15:04"

// FieldError represents a single validation error
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface for a single field error
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator provides boundary validation for incoming records. It checks
// required fields and date/time formats only; enum-like type fields and
// church/employee references are deliberately left unchecked here.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEmployeeCreate validates an employee creation request
func (v *Validator) ValidateEmployeeCreate(req *models.EmployeeCreate) []FieldError {
	var errors []FieldError

	if req.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}

	return errors
}

// ValidateChurchCreate validates a church creation request
func (v *Validator) ValidateChurchCreate(req *models.ChurchCreate) []FieldError {
	var errors []FieldError

	if req.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}

	return errors
}

// ValidateServiceCreate validates a service creation request
func (v *Validator) ValidateServiceCreate(req *models.ServiceCreate) []FieldError {
	var errors []FieldError

	if req.Type == "" {
		errors = append(errors, FieldError{Field: "type", Message: "type is required"})
	}

	if req.Date == "" {
		errors = append(errors, FieldError{Field: "date", Message: "date is required"})
	} else if !dates.IsValid(req.Date) {
		errors = append(errors, FieldError{Field: "date", Message: "invalid date, expected YYYY-MM-DD", Value: req.Date})
	}

	if req.Time == "" {
		errors = append(errors, FieldError{Field: "time", Message: "time is required"})
	} else if !isValidTime(req.Time) {
		errors = append(errors, FieldError{Field: "time", Message: "invalid time, expected HH:MM", Value: req.Time})
	}

	if req.ChurchID == "" {
		errors = append(errors, FieldError{Field: "church_id", Message: "church_id is required"})
	}

	return errors
}

// ValidateServiceUpdate validates the fields present in a service patch
func (v *Validator) ValidateServiceUpdate(update *models.ServiceUpdate) []FieldError {
	var errors []FieldError

	if update.Date != nil && !dates.IsValid(*update.Date) {
		errors = append(errors, FieldError{Field: "date", Message: "invalid date, expected YYYY-MM-DD", Value: *update.Date})
	}
	if update.Time != nil && !isValidTime(*update.Time) {
		errors = append(errors, FieldError{Field: "time", Message: "invalid time, expected HH:MM", Value: *update.Time})
	}

	return errors
}

// ValidateAbsenceCreate validates an absence creation request. The interval
// ordering start_date <= end_date is expected but not validated.
func (v *Validator) ValidateAbsenceCreate(req *models.AbsenceCreate) []FieldError {
	var errors []FieldError

	if req.Type == "" {
		errors = append(errors, FieldError{Field: "type", Message: "type is required"})
	}

	if req.StartDate == "" {
		errors = append(errors, FieldError{Field: "start_date", Message: "start_date is required"})
	} else if !dates.IsValid(req.StartDate) {
		errors = append(errors, FieldError{Field: "start_date", Message: "invalid date, expected YYYY-MM-DD", Value: req.StartDate})
	}

	if req.EndDate == "" {
		errors = append(errors, FieldError{Field: "end_date", Message: "end_date is required"})
	} else if !dates.IsValid(req.EndDate) {
		errors = append(errors, FieldError{Field: "end_date", Message: "invalid date, expected YYYY-MM-DD", Value: req.EndDate})
	}

	if req.EmployeeID == "" {
		errors = append(errors, FieldError{Field: "employee_id", Message: "employee_id is required"})
	}

	return errors
}

// ValidateAbsenceUpdate validates the fields present in an absence patch
func (v *Validator) ValidateAbsenceUpdate(update *models.AbsenceUpdate) []FieldError {
	var errors []FieldError

	if update.StartDate != nil && !dates.IsValid(*update.StartDate) {
		errors = append(errors, FieldError{Field: "start_date", Message: "invalid date, expected YYYY-MM-DD", Value: *update.StartDate})
	}
	if update.EndDate != nil && !dates.IsValid(*update.EndDate) {
		errors = append(errors, FieldError{Field: "end_date", Message: "invalid date, expected YYYY-MM-DD", Value: *update.EndDate})
	}

	return errors
}

// ValidateCalendarRequest validates the calendar window up front so that
// malformed dates never reach the lexical range queries
func (v *Validator) ValidateCalendarRequest(req *models.CalendarRequest) []FieldError {
	var errors []FieldError

	if req.StartDate == "" {
		errors = append(errors, FieldError{Field: "start_date", Message: "start_date is required"})
	} else if !dates.IsValid(req.StartDate) {
		errors = append(errors, FieldError{Field: "start_date", Message: "invalid date, expected YYYY-MM-DD", Value: req.StartDate})
	}

	if req.EndDate == "" {
		errors = append(errors, FieldError{Field: "end_date", Message: "end_date is required"})
	} else if !dates.IsValid(req.EndDate) {
		errors = append(errors, FieldError{Field: "end_date", Message: "invalid date, expected YYYY-MM-DD", Value: req.EndDate})
	}

	return errors
}

// isValidTime checks if a string is a valid HH:MM time
func isValidTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
