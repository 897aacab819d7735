package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance lifecycle
type AttendanceService interface {
	// SignIn opens today's record for the authenticated employee.
	// Fails with ErrAlreadySignedIn on a second call the same day.
	SignIn(ctx context.Context) (SignInResponse, error)

	// SignOut closes today's record, deriving working hours and the
	// final status.
	SignOut(ctx context.Context) (SignOutResponse, error)

	// History returns the caller's records, most recent date first.
	History(ctx context.Context) ([]RecordResponse, error)

	// Summary aggregates the caller's records by status.
	Summary(ctx context.Context) (Summary, error)

	// AdminReport lists records across users with identity annotations.
	AdminReport(ctx context.Context, filter ReportFilter) ([]RecordResponse, error)
}
