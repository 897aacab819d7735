package attendance

import (
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SignInResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	SignIn  string `json:"sign_in"`
}

type SignOutResponse struct {
	Message      string  `json:"message"`
	WorkingHours float64 `json:"working_hours"`
	Status       string  `json:"status"`
}

type RecordResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	SignIn       *string `json:"sign_in"`
	SignOut      *string `json:"sign_out"`
	WorkingHours float64 `json:"working_hours"`
	Status       string  `json:"status"`

	UserEmail    *string `json:"user_email,omitempty"`
	UserFullName *string `json:"user_full_name,omitempty"`
}

// Summary holds per-status day counts plus total hours across all of a
// user's records.
type Summary struct {
	PresentDays       int     `json:"present_days"`
	HalfDays          int     `json:"half_days"`
	AbsentDays        int     `json:"absent_days"`
	TotalWorkingHours float64 `json:"total_working_hours"`
}

// ReportFilter narrows the admin report. An empty or "all" UserID means
// every user; an empty Date means every date.
type ReportFilter struct {
	UserID string
	Date   string
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
