package http

import (
	"log/slog"
	"net/http"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/report"
	"github.com/staffhub-hr/workforce-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AdminDashboard(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// AdminDashboard implements ReportHandler.
func (h *ReportHandlerImpl) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportService.AdminDashboard(r.Context())
	if err != nil {
		slog.Error("AdminDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
