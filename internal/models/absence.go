package models

import (
	"time"
)

// Conventional absence types. The type field is free-form and the store does
// not enforce these values.
const (
	AbsenceTypeFrihelg     = "Frihelg"
	AbsenceTypeAvspasering = "Avspasering"
	AbsenceTypeSykemelding = "Sykemelding"
	AbsenceTypeFerie       = "Ferie"
)

// Absence represents an employee absence over an inclusive date interval.
// EmployeeID is an advisory reference and start_date <= end_date is expected
// but not validated.
type Absence struct {
	ID         string    `json:"id" bson:"_id"`
	Type       string    `json:"type" bson:"type"`
	StartDate  string    `json:"start_date" bson:"start_date"` // YYYY-MM-DD
	EndDate    string    `json:"end_date" bson:"end_date"`     // YYYY-MM-DD
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	Notes      *string   `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// AbsenceUpdate is a sparse patch for an absence; nil fields are left untouched
type AbsenceUpdate struct {
	Type       *string `json:"type,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// AbsenceCreate is the request body for creating an absence
type AbsenceCreate struct {
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}
