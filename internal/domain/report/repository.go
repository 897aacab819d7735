package report

import (
	"context"
	"time"
)

// ReportRepository runs the aggregate queries behind the admin
// dashboard. Read-only; it owns no rows.
type ReportRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendanceByStatus(ctx context.Context, date time.Time) (present, halfDay, absent int64, err error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}
