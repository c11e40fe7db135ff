package models

// CalendarRequest selects the closed date interval for the calendar view
type CalendarRequest struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CompactMode bool   `json:"compact_mode"`
}

// CalendarResponse is the consolidated calendar view for a date interval.
// DateRange is the day-by-day axis; in compact mode it contains only the
// days that carry a service or absence.
type CalendarResponse struct {
	Services  []*Service  `json:"services"`
	Absences  []*Absence  `json:"absences"`
	Employees []*Employee `json:"employees"`
	Churches  []*Church   `json:"churches"`
	DateRange []string    `json:"date_range"`
}
