package models

import (
	"time"
)

// Employee represents a staff member that can be assigned to services
type Employee struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Active    bool      `json:"active" bson:"active"`
	Position  int       `json:"position" bson:"position"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// EmployeeUpdate is a sparse patch for an employee; nil fields are left untouched
type EmployeeUpdate struct {
	Name     *string `json:"name,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// EmployeeCreate is the request body for creating an employee
type EmployeeCreate struct {
	Name     string `json:"name"`
	Active   *bool  `json:"active,omitempty"`
	Position int    `json:"position"`
}
