package leave

import (
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type ApplyRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{"PAID", "SICK", "CASUAL"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be PAID, SICK or CASUAL",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	RequestID string `json:"-"`
	Status    string `json:"status"`
}

type SetBalanceRequest struct {
	TotalLeaves int `json:"total_leaves"`
	// Employee is the target user's email; empty or "all" means every
	// EMPLOYEE-role user.
	Employee string `json:"employee,omitempty"`
}

func (r *SetBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TotalLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_leaves",
			Message: "total_leaves must not be negative",
		})
	}

	if r.Employee != "" && r.Employee != "all" && !validator.IsValidEmail(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee must be an email address or \"all\"",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	AppliedAt  string  `json:"applied_at"`
	ActionedAt *string `json:"actioned_at"`

	UserEmail    *string `json:"user_email,omitempty"`
	UserFullName *string `json:"user_full_name,omitempty"`
}

// SummaryResponse is the admin view: taken is computed live from
// APPROVED request spans, balance never goes below zero.
type SummaryResponse struct {
	Total   int `json:"total"`
	Taken   int `json:"taken"`
	Balance int `json:"balance"`
}

// BalanceResponse mirrors the stored balance row. LeavesTaken is the
// stored counter, which is not recomputed on this path.
type BalanceResponse struct {
	UserID      string `json:"user_id"`
	TotalLeaves int    `json:"total_leaves"`
	LeavesTaken int    `json:"leaves_taken"`
	Balance     int    `json:"balance"`
	UpdatedAt   string `json:"updated_at"`
}
