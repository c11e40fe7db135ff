package models

import (
	"time"
)

// DefaultInboxWidth is the inbox column width returned when no settings
// document has ever been written.
const DefaultInboxWidth = 170

// Settings is the singleton configuration document. At most one settings
// document exists; writes replace it wholesale.
type Settings struct {
	ID         string     `json:"id,omitempty" bson:"_id"`
	InboxWidth int        `json:"inbox_width" bson:"inbox_width"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// SettingsUpdate is the request body for replacing the settings singleton
type SettingsUpdate struct {
	InboxWidth int `json:"inbox_width"`
}

// DefaultSettings returns the settings shape used when none has been stored
func DefaultSettings() *Settings {
	return &Settings{InboxWidth: DefaultInboxWidth}
}
