package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeCasual LeaveType = "CASUAL"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is one employee's leave application. Created PENDING,
// transitioned by an admin to APPROVED or REJECTED; never deleted.
type LeaveRequest struct {
	ID         string
	UserID     string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	AppliedAt  time.Time
	ActionedAt *time.Time

	// DTO / Join
	UserEmail    *string
	UserFullName *string
}

// LeaveBalance is a user's entitlement ledger, one row per user,
// created lazily on first touch. LeavesTaken is the stored counter the
// reference system carries alongside the live computation; the two are
// surfaced separately and never unified here.
type LeaveBalance struct {
	ID          string
	UserID      string
	TotalLeaves int
	LeavesTaken int
	UpdatedAt   time.Time
}
