package models

import (
	"time"
)

// Conventional service types. The type field is free-form and the store does
// not enforce these values.
const (
	ServiceTypeGudstjeneste  = "Gudstjeneste"
	ServiceTypeVielse        = "Vielse"
	ServiceTypeKonsert       = "Konsert"
	ServiceTypeAnnet         = "Annet"
	ServiceTypeVikartjeneste = "Vikartjeneste"
)

// Service represents a scheduled church service. A nil EmployeeID means the
// service sits in the unassigned inbox. ChurchID and EmployeeID are advisory
// references: they are not validated against the store.
type Service struct {
	ID         string    `json:"id" bson:"_id"`
	Type       string    `json:"type" bson:"type"`
	Date       string    `json:"date" bson:"date"` // YYYY-MM-DD
	Time       string    `json:"time" bson:"time"` // HH:MM
	EmployeeID *string   `json:"employee_id" bson:"employee_id"`
	ChurchID   string    `json:"church_id" bson:"church_id"`
	Notes      *string   `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// ServiceUpdate is a sparse patch for a service; nil fields are left untouched
type ServiceUpdate struct {
	Type       *string `json:"type,omitempty"`
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	ChurchID   *string `json:"church_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ServiceCreate is the request body for creating a service
type ServiceCreate struct {
	Type       string  `json:"type"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	EmployeeID *string `json:"employee_id"`
	ChurchID   string  `json:"church_id"`
	Notes      *string `json:"notes,omitempty"`
}
