package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `id, user_id, leave_type, start_date, end_date, reason, status, applied_at, actioned_at`

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING applied_at
	`

	req.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.AppliedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.AppliedAt, &req.ActionedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY applied_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by user: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.leave_type, l.start_date, l.end_date, l.reason,
			   l.status, l.applied_at, l.actioned_at,
			   u.email AS user_email,
			   u.full_name AS user_full_name
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.applied_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, true)
}

// ListActiveByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListActiveByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE user_id = $1
		  AND status IN ('PENDING', 'APPROVED')
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// SumApprovedDays implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) SumApprovedDays(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive day count per approved request.
	query := `
		SELECT COALESCE(SUM(end_date - start_date + 1), 0)
		FROM leave_requests
		WHERE user_id = $1 AND status = 'APPROVED'
	`

	var taken int
	if err := q.QueryRow(ctx, query, userID).Scan(&taken); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return taken, nil
}

// SetDecision implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) SetDecision(ctx context.Context, id string, status leave.LeaveStatus, actionedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, actioned_at = $2
		WHERE id = $3
	`, status, actionedAt, id)
	if err != nil {
		return fmt.Errorf("failed to set leave decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

func scanLeaveRequests(rows pgx.Rows, withIdentity bool) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		dest := []interface{}{
			&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.AppliedAt, &req.ActionedAt,
		}
		if withIdentity {
			dest = append(dest, &req.UserEmail, &req.UserFullName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
