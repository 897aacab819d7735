package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/policy"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location

	// now is swappable in tests.
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, loc *time.Location) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		loc:                  loc,
		now:                  time.Now,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// localDay maps an instant onto the organizational working day.
func (a *AttendanceServiceImpl) localDay(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// timePtrToString safely converts a *time.Time to a wire timestamp.
func (a *AttendanceServiceImpl) timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(a.loc).Format(validator.TimestampLayout)
	return &formatted
}

// SignIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SignIn(ctx context.Context) (attendance.SignInResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	nowUTC := a.now().UTC()
	today := a.localDay(nowUTC)

	record, err := a.AttendanceRepository.GetOrCreate(ctx, userID, today)
	if err != nil {
		return attendance.SignInResponse{}, fmt.Errorf("failed to get or create attendance record: %w", err)
	}

	if record.SignIn != nil {
		return attendance.SignInResponse{}, attendance.ErrAlreadySignedIn
	}

	// Tentative status; overwritten by the sign-out classification.
	updated, err := a.AttendanceRepository.SetSignIn(ctx, record.ID, nowUTC, policy.StatusPresent)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	return attendance.SignInResponse{
		Message: "Sign-in successful",
		Date:    updated.Date.Format(validator.DateLayout),
		SignIn:  nowUTC.In(a.loc).Format(validator.TimestampLayout),
	}, nil
}

// SignOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SignOut(ctx context.Context) (attendance.SignOutResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.SignOutResponse{}, err
	}

	nowUTC := a.now().UTC()
	today := a.localDay(nowUTC)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.SignOutResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil || record.SignIn == nil {
		return attendance.SignOutResponse{}, attendance.ErrNoSignIn
	}
	if record.SignOut != nil {
		return attendance.SignOutResponse{}, attendance.ErrAlreadySignedOut
	}

	hours := policy.WorkingHours(*record.SignIn, nowUTC)
	status := policy.ClassifyStatus(hours)

	updated, err := a.AttendanceRepository.SetSignOut(ctx, record.ID, nowUTC, hours, status)
	if err != nil {
		return attendance.SignOutResponse{}, err
	}

	return attendance.SignOutResponse{
		Message:      "Sign-out successful",
		WorkingHours: updated.WorkingHours,
		Status:       updated.Status,
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.RecordResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return a.toRecordResponses(records), nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context) (attendance.Summary, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.Summary{}, err
	}

	summary, err := a.AttendanceRepository.Summarize(ctx, userID)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return summary, nil
}

// AdminReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AdminReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListForReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance report: %w", err)
	}

	return a.toRecordResponses(records), nil
}

func (a *AttendanceServiceImpl) toRecordResponses(records []attendance.Attendance) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.RecordResponse{
			ID:           record.ID,
			UserID:       record.UserID,
			Date:         record.Date.Format(validator.DateLayout),
			SignIn:       a.timePtrToString(record.SignIn),
			SignOut:      a.timePtrToString(record.SignOut),
			WorkingHours: record.WorkingHours,
			Status:       record.Status,
			UserEmail:    record.UserEmail,
			UserFullName: record.UserFullName,
		})
	}
	return responses
}
