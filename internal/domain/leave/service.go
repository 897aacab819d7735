package leave

import "context"

// LeaveService defines business logic for the leave accounting ledger
type LeaveService interface {
	// Apply validates the range, the overlap rule and the balance, then
	// creates a PENDING request for the authenticated employee.
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)

	// ListMine returns the caller's requests of any status.
	ListMine(ctx context.Context) ([]RequestResponse, error)

	// ListAll returns every request with requester identity (admin).
	ListAll(ctx context.Context) ([]RequestResponse, error)

	// Decide transitions a request to APPROVED or REJECTED (admin).
	Decide(ctx context.Context, req DecideRequest) (RequestResponse, error)

	// Summary reports entitlement vs live consumption for one user,
	// looked up by email (admin).
	Summary(ctx context.Context, employeeEmail string) (SummaryResponse, error)

	// SetBalance resets total_leaves for one user or, with an empty or
	// "all" target, for every EMPLOYEE-role user (admin).
	SetBalance(ctx context.Context, req SetBalanceRequest) error

	// MyBalance returns the caller's stored balance row, creating it
	// with the configured default if absent.
	MyBalance(ctx context.Context) (BalanceResponse, error)
}
