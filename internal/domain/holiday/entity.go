package holiday

import "time"

// Holiday is one entry in the organizational holiday calendar.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
