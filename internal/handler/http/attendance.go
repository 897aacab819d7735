package http

import (
	"log/slog"
	"net/http"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	MySummary(w http.ResponseWriter, r *http.Request)
	AdminReport(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// SignIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.SignIn(r.Context())
	if err != nil {
		slog.Error("SignIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed in", result)
}

// SignOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.SignOut(r.Context())
	if err != nil {
		slog.Error("SignOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed out", result)
}

// MyHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.History(r.Context())
	if err != nil {
		slog.Error("MyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.attendanceService.Summary(r.Context())
	if err != nil {
		slog.Error("MySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// AdminReport implements AttendanceHandler.
func (h *AttendanceHandlerImpl) AdminReport(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ReportFilter{
		UserID: r.URL.Query().Get("user_id"),
		Date:   r.URL.Query().Get("date"),
	}

	records, err := h.attendanceService.AdminReport(r.Context(), filter)
	if err != nil {
		slog.Error("AdminReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
