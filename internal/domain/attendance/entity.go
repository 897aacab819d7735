package attendance

import (
	"time"
)

// Attendance is one user's daily sign-in/out record. At most one row
// exists per (user, date); working_hours and the final status are only
// authoritative once sign_out is set.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	SignIn       *time.Time
	SignOut      *time.Time
	WorkingHours float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	UserEmail    *string
	UserFullName *string
}
