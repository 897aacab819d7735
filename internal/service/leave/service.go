package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/user"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/policy"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/validator"
	"github.com/staffhub-hr/workforce-backend-go/internal/repository/postgresql"
)

// Transactor runs fn within a storage transaction; repositories called
// with the supplied context join it. Satisfied by postgresql.WithTransaction
// in production.
type Transactor func(ctx context.Context, db *database.DB, fn func(txCtx context.Context) error) error

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	user.UserRepository

	transact     Transactor
	defaultTotal int
	decideGuard  bool

	// now is swappable in tests.
	now func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	userRepository user.UserRepository,
	defaultTotal int,
	decideGuard bool,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		UserRepository:         userRepository,
		transact:               postgresql.WithTransaction,
		defaultTotal:           defaultTotal,
		decideGuard:            decideGuard,
		now:                    time.Now,
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

// Apply implements leave.LeaveService.
//
// The balance check and the insert run inside one transaction with the
// user's balance row locked, so two concurrent applications cannot both
// pass the check and jointly overcommit the entitlement.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	if endDate.Before(startDate) {
		return leave.RequestResponse{}, leave.ErrInvalidRange
	}

	var created leave.LeaveRequest
	err = l.transact(ctx, l.db, func(txCtx context.Context) error {
		if _, err := l.LeaveBalanceRepository.GetOrCreate(txCtx, userID, l.defaultTotal); err != nil {
			return fmt.Errorf("failed to get or create leave balance: %w", err)
		}

		balance, err := l.LeaveBalanceRepository.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		active, err := l.LeaveRequestRepository.ListActiveByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to list active leave requests: %w", err)
		}
		for _, existing := range active {
			if policy.RangesOverlap(existing.StartDate, existing.EndDate, startDate, endDate) {
				return leave.ErrOverlappingLeave
			}
		}

		taken, err := l.LeaveRequestRepository.SumApprovedDays(txCtx, userID)
		if err != nil {
			return err
		}

		requested := policy.InclusiveDayCount(startDate, endDate)
		if taken+requested > balance.TotalLeaves {
			return leave.ErrInsufficientBalance
		}

		created, err = l.LeaveRequestRepository.Create(txCtx, leave.LeaveRequest{
			UserID:    userID,
			LeaveType: leave.LeaveType(req.LeaveType),
			StartDate: startDate,
			EndDate:   endDate,
			Reason:    req.Reason,
			Status:    leave.LeaveStatusPending,
		})
		return err
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.RequestResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toRequestResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}

	return toRequestResponses(requests), nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideRequest) (leave.RequestResponse, error) {
	status := leave.LeaveStatus(req.Status)
	if status != leave.LeaveStatusApproved && status != leave.LeaveStatusRejected {
		return leave.RequestResponse{}, leave.ErrInvalidDecision
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if l.decideGuard && request.Status != leave.LeaveStatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyDecided
	}

	actionedAt := l.now()
	if err := l.LeaveRequestRepository.SetDecision(ctx, request.ID, status, actionedAt); err != nil {
		return leave.RequestResponse{}, err
	}

	request.Status = status
	request.ActionedAt = &actionedAt
	return toRequestResponse(request), nil
}

// Summary implements leave.LeaveService.
func (l *LeaveServiceImpl) Summary(ctx context.Context, employeeEmail string) (leave.SummaryResponse, error) {
	u, err := l.UserRepository.GetByEmail(ctx, employeeEmail)
	if err != nil {
		return leave.SummaryResponse{}, err
	}

	balance, err := l.LeaveBalanceRepository.GetOrCreate(ctx, u.ID, l.defaultTotal)
	if err != nil {
		return leave.SummaryResponse{}, fmt.Errorf("failed to get or create leave balance: %w", err)
	}

	taken, err := l.LeaveRequestRepository.SumApprovedDays(ctx, u.ID)
	if err != nil {
		return leave.SummaryResponse{}, err
	}

	remaining := balance.TotalLeaves - taken
	if remaining < 0 {
		remaining = 0
	}

	return leave.SummaryResponse{
		Total:   balance.TotalLeaves,
		Taken:   taken,
		Balance: remaining,
	}, nil
}

// SetBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) SetBalance(ctx context.Context, req leave.SetBalanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Bulk reset targets EMPLOYEE-role users only; admins keep whatever
	// balance row they may have.
	if req.Employee == "" || req.Employee == "all" {
		ids, err := l.UserRepository.ListIDsByRole(ctx, user.RoleEmployee)
		if err != nil {
			return fmt.Errorf("failed to list employee users: %w", err)
		}
		return l.LeaveBalanceRepository.SetTotalForUsers(ctx, ids, req.TotalLeaves)
	}

	u, err := l.UserRepository.GetByEmail(ctx, req.Employee)
	if err != nil {
		return err
	}

	return l.LeaveBalanceRepository.SetTotal(ctx, u.ID, req.TotalLeaves)
}

// MyBalance implements leave.LeaveService.
//
// Surfaces the stored leaves_taken counter verbatim; the live
// recomputation used by Apply and Summary is deliberately not applied
// on this path.
func (l *LeaveServiceImpl) MyBalance(ctx context.Context) (leave.BalanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	balance, err := l.LeaveBalanceRepository.GetOrCreate(ctx, userID, l.defaultTotal)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to get or create leave balance: %w", err)
	}

	remaining := balance.TotalLeaves - balance.LeavesTaken
	if remaining < 0 {
		remaining = 0
	}

	return leave.BalanceResponse{
		UserID:      balance.UserID,
		TotalLeaves: balance.TotalLeaves,
		LeavesTaken: balance.LeavesTaken,
		Balance:     remaining,
		UpdatedAt:   balance.UpdatedAt.Format(validator.TimestampLayout),
	}, nil
}

func toRequestResponse(req leave.LeaveRequest) leave.RequestResponse {
	var actionedAt *string
	if req.ActionedAt != nil {
		formatted := req.ActionedAt.Format(validator.TimestampLayout)
		actionedAt = &formatted
	}

	return leave.RequestResponse{
		ID:           req.ID,
		UserID:       req.UserID,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format(validator.DateLayout),
		EndDate:      req.EndDate.Format(validator.DateLayout),
		Reason:       req.Reason,
		Status:       string(req.Status),
		AppliedAt:    req.AppliedAt.Format(validator.TimestampLayout),
		ActionedAt:   actionedAt,
		UserEmail:    req.UserEmail,
		UserFullName: req.UserFullName,
	}
}

func toRequestResponses(requests []leave.LeaveRequest) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toRequestResponse(req))
	}
	return responses
}
