package report

import "context"

type ReportService interface {
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
}
