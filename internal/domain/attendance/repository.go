package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. The
// (user_id, date) pair is unique at the storage layer; GetOrCreate
// relies on that constraint rather than fetch-then-insert.
type AttendanceRepository interface {
	// GetOrCreate returns the row for (userID, date), inserting an empty
	// one if none exists. Implementations must be safe under concurrent
	// calls for the same key: on an insert conflict the existing row is
	// re-fetched and returned, never an error.
	GetOrCreate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// SetSignIn records the sign-in timestamp and the tentative status.
	SetSignIn(ctx context.Context, id string, signIn time.Time, status string) (Attendance, error)

	// SetSignOut records sign-out, the derived working hours and the
	// final status.
	SetSignOut(ctx context.Context, id string, signOut time.Time, workingHours float64, status string) (Attendance, error)

	// GetByUserAndDate fetches a single row; (nil, nil) when absent.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// ListByUser returns the user's rows, most recent date first.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// Summarize aggregates the user's rows by status and sums hours.
	Summarize(ctx context.Context, userID string) (Summary, error)

	// ListForReport returns rows across users, annotated with the owning
	// user's identity, optionally filtered by user and/or exact date.
	ListForReport(ctx context.Context, filter ReportFilter) ([]Attendance, error)

	// CloseOpenBefore downgrades rows dated before the given day that
	// were signed in but never signed out, returning how many changed.
	CloseOpenBefore(ctx context.Context, date time.Time) (int, error)
}
