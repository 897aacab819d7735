package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

const leaveBalanceColumns = `id, user_id, total_leaves, leaves_taken, updated_at`

// GetOrCreate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) GetOrCreate(ctx context.Context, userID string, defaultTotal int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO leave_balances (id, user_id, total_leaves, leaves_taken)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING ` + leaveBalanceColumns

	var bal leave.LeaveBalance
	err := q.QueryRow(ctx, insert, uuid.NewString(), userID, defaultTotal).Scan(
		&bal.ID, &bal.UserID, &bal.TotalLeaves, &bal.LeavesTaken, &bal.UpdatedAt,
	)
	if err == nil {
		return bal, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	// Conflict: a row already exists for this user.
	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE user_id = $1`
	err = q.QueryRow(ctx, query, userID).Scan(
		&bal.ID, &bal.UserID, &bal.TotalLeaves, &bal.LeavesTaken, &bal.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return bal, nil
}

// GetForUpdate implements leave.LeaveBalanceRepository.
//
// Must run inside WithTransaction; the row lock is what serializes
// concurrent Apply calls for the same user.
func (r *leaveBalanceRepository) GetForUpdate(ctx context.Context, userID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE user_id = $1 FOR UPDATE`

	var bal leave.LeaveBalance
	err := q.QueryRow(ctx, query, userID).Scan(
		&bal.ID, &bal.UserID, &bal.TotalLeaves, &bal.LeavesTaken, &bal.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to lock leave balance: %w", err)
	}

	return bal, nil
}

// SetTotal implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) SetTotal(ctx context.Context, userID string, total int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (id, user_id, total_leaves, leaves_taken)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (user_id) DO UPDATE
		SET total_leaves = EXCLUDED.total_leaves, updated_at = NOW()
	`, uuid.NewString(), userID, total)
	if err != nil {
		return fmt.Errorf("failed to set leave balance total: %w", err)
	}

	return nil
}

// SetTotalForUsers implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) SetTotalForUsers(ctx context.Context, userIDs []string, total int) error {
	for _, userID := range userIDs {
		if err := r.SetTotal(ctx, userID, total); err != nil {
			return err
		}
	}
	return nil
}
