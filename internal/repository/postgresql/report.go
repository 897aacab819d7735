package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/report"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// CountEmployees implements report.ReportRepository.
func (r *reportRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'EMPLOYEE'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// CountAttendanceByStatus implements report.ReportRepository.
func (r *reportRepository) CountAttendanceByStatus(ctx context.Context, date time.Time) (present, halfDay, absent int64, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'HALF_DAY'),
			COUNT(*) FILTER (WHERE status = 'ABSENT')
		FROM attendances
		WHERE date = $1
	`

	if err = q.QueryRow(ctx, query, date).Scan(&present, &halfDay, &absent); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return present, halfDay, absent, nil
}

// CountPendingLeaves implements report.ReportRepository.
func (r *reportRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	return count, nil
}
