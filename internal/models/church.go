package models

import (
	"time"
)

// Church represents a venue where services take place
type Church struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ChurchUpdate is a sparse patch for a church; nil fields are left untouched
type ChurchUpdate struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// ChurchCreate is the request body for creating a church
type ChurchCreate struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}
