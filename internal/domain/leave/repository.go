package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns the user's requests of any status, most recently
	// applied first.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListAll returns every request annotated with requester identity.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// ListActiveByUser returns the user's PENDING and APPROVED requests,
	// the set the overlap rule is checked against.
	ListActiveByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// SumApprovedDays returns the live "taken" figure: the sum of
	// inclusive day counts over the user's APPROVED requests.
	SumApprovedDays(ctx context.Context, userID string) (int, error)

	// SetDecision records the status transition and actioned_at.
	SetDecision(ctx context.Context, id string, status LeaveStatus, actionedAt time.Time) error
}

// LeaveBalanceRepository defines data access for per-user balance rows.
type LeaveBalanceRepository interface {
	// GetOrCreate returns the user's balance row, inserting one with the
	// given default entitlement if absent. Safe under concurrent calls
	// for the same user.
	GetOrCreate(ctx context.Context, userID string, defaultTotal int) (LeaveBalance, error)

	// GetForUpdate locks the user's balance row for the remainder of the
	// surrounding transaction. Used to serialize the check-then-insert
	// sequence in Apply.
	GetForUpdate(ctx context.Context, userID string) (LeaveBalance, error)

	// SetTotal upserts total_leaves for one user.
	SetTotal(ctx context.Context, userID string, total int) error

	// SetTotalForUsers upserts total_leaves for each of the given users.
	SetTotalForUsers(ctx context.Context, userIDs []string, total int) error
}
