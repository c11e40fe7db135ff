package models

// Backup is a full snapshot of all five collections, including inactive
// records. Importing one is destructive: existing data is erased first.
type Backup struct {
	Employees []*Employee `json:"employees"`
	Churches  []*Church   `json:"churches"`
	Services  []*Service  `json:"services"`
	Absences  []*Absence  `json:"absences"`
	Settings  *Settings   `json:"settings"`
}
