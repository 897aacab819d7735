package report

import (
	"context"
	"time"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/report"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	report.ReportRepository
	loc *time.Location

	now func() time.Time
}

func NewReportService(reportRepository report.ReportRepository, loc *time.Location) *ReportServiceImpl {
	return &ReportServiceImpl{
		ReportRepository: reportRepository,
		loc:              loc,
		now:              time.Now,
	}
}

// AdminDashboard implements report.ReportService.
func (s *ReportServiceImpl) AdminDashboard(ctx context.Context) (report.AdminDashboardResponse, error) {
	local := s.now().In(s.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	totalEmployees, err := s.ReportRepository.CountEmployees(ctx)
	if err != nil {
		return report.AdminDashboardResponse{}, err
	}

	present, halfDay, absent, err := s.ReportRepository.CountAttendanceByStatus(ctx, today)
	if err != nil {
		return report.AdminDashboardResponse{}, err
	}

	pendingLeaves, err := s.ReportRepository.CountPendingLeaves(ctx)
	if err != nil {
		return report.AdminDashboardResponse{}, err
	}

	notSignedIn := totalEmployees - present - halfDay - absent
	if notSignedIn < 0 {
		notSignedIn = 0
	}

	return report.AdminDashboardResponse{
		TotalEmployees: totalEmployees,
		Today: report.TodayAttendanceStats{
			Present:     present,
			HalfDay:     halfDay,
			Absent:      absent,
			NotSignedIn: notSignedIn,
			Date:        today.Format(validator.DateLayout),
		},
		PendingLeaves: pendingLeaves,
	}, nil
}
