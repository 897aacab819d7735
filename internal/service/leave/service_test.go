package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/user"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRequestRepo struct {
	requests []*leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("req-%d", f.nextID)
	req.AppliedAt = time.Now()
	stored := req
	f.requests = append(f.requests, &stored)
	return req, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return *req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrRequestNotFound
}

func (f *fakeLeaveRequestRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.UserID == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	out := make([]leave.LeaveRequest, 0, len(f.requests))
	for _, req := range f.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListActiveByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.UserID == userID && req.Status != leave.LeaveStatusRejected {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) SumApprovedDays(ctx context.Context, userID string) (int, error) {
	total := 0
	for _, req := range f.requests {
		if req.UserID == userID && req.Status == leave.LeaveStatusApproved {
			total += int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
		}
	}
	return total, nil
}

func (f *fakeLeaveRequestRepo) SetDecision(ctx context.Context, id string, status leave.LeaveStatus, actionedAt time.Time) error {
	for _, req := range f.requests {
		if req.ID == id {
			req.Status = status
			req.ActionedAt = &actionedAt
			return nil
		}
	}
	return leave.ErrRequestNotFound
}

type fakeLeaveBalanceRepo struct {
	balances map[string]*leave.LeaveBalance
}

func newFakeLeaveBalanceRepo() *fakeLeaveBalanceRepo {
	return &fakeLeaveBalanceRepo{balances: make(map[string]*leave.LeaveBalance)}
}

func (f *fakeLeaveBalanceRepo) GetOrCreate(ctx context.Context, userID string, defaultTotal int) (leave.LeaveBalance, error) {
	if existing, ok := f.balances[userID]; ok {
		return *existing, nil
	}
	balance := &leave.LeaveBalance{
		ID:          "bal-" + userID,
		UserID:      userID,
		TotalLeaves: defaultTotal,
		UpdatedAt:   time.Now(),
	}
	f.balances[userID] = balance
	return *balance, nil
}

func (f *fakeLeaveBalanceRepo) GetForUpdate(ctx context.Context, userID string) (leave.LeaveBalance, error) {
	if existing, ok := f.balances[userID]; ok {
		return *existing, nil
	}
	return leave.LeaveBalance{}, fmt.Errorf("balance row missing for %s", userID)
}

func (f *fakeLeaveBalanceRepo) SetTotal(ctx context.Context, userID string, total int) error {
	if existing, ok := f.balances[userID]; ok {
		existing.TotalLeaves = total
		return nil
	}
	f.balances[userID] = &leave.LeaveBalance{UserID: userID, TotalLeaves: total}
	return nil
}

func (f *fakeLeaveBalanceRepo) SetTotalForUsers(ctx context.Context, userIDs []string, total int) error {
	for _, id := range userIDs {
		if err := f.SetTotal(ctx, id, total); err != nil {
			return err
		}
	}
	return nil
}

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ListIDsByRole(ctx context.Context, role user.Role) ([]string, error) {
	var ids []string
	for _, u := range f.users {
		if u.Role == role {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

type leaveTestEnv struct {
	svc      *LeaveServiceImpl
	requests *fakeLeaveRequestRepo
	balances *fakeLeaveBalanceRepo
	users    *fakeUserRepo
}

func newLeaveTestEnv(t *testing.T) *leaveTestEnv {
	t.Helper()
	requests := &fakeLeaveRequestRepo{}
	balances := newFakeLeaveBalanceRepo()
	users := &fakeUserRepo{}

	svc := NewLeaveService(nil, requests, balances, users, 12, false)
	svc.transact = func(ctx context.Context, db *database.DB, fn func(txCtx context.Context) error) error {
		return fn(ctx)
	}
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }

	return &leaveTestEnv{svc: svc, requests: requests, balances: balances, users: users}
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestApplyCreatesPendingRequest(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	created, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "family visit",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusPending), created.Status)
	assert.Equal(t, "2026-03-10", created.StartDate)
	assert.Equal(t, "2026-03-12", created.EndDate)
}

func TestApplyRejectsInvertedRange(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	_, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "SICK",
		StartDate: "2026-03-12",
		EndDate:   "2026-03-10",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestApplyRejectsOverlap(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	_, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
	})
	require.NoError(t, err)

	// Touching the existing range on its boundary still overlaps.
	_, err = env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "CASUAL",
		StartDate: "2026-03-12",
		EndDate:   "2026-03-14",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	// A disjoint range is accepted.
	_, err = env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "CASUAL",
		StartDate: "2026-03-20",
		EndDate:   "2026-03-21",
	})
	require.NoError(t, err)
}

func TestApplyRejectsInsufficientBalance(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	// 10 approved days against the default entitlement of 12.
	_, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-11",
	})
	require.NoError(t, err)
	require.NoError(t, env.requests.SetDecision(context.Background(), "req-1", leave.LeaveStatusApproved, time.Now()))

	_, err = env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// Exactly exhausting the entitlement is allowed.
	created, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-02",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusPending), created.Status)
}

func TestApplyValidatesLeaveType(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	_, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "SABBATICAL",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
	})
	assert.Error(t, err)
}

func TestDecide(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	created, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
	})
	require.NoError(t, err)

	_, err = env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: created.ID, Status: "MAYBE"})
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)

	decided, err := env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: created.ID, Status: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusApproved), decided.Status)
	require.NotNil(t, decided.ActionedAt)

	// Without the guard a second decision silently overwrites.
	decided, err = env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: created.ID, Status: "REJECTED"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), decided.Status)
}

func TestDecideGuard(t *testing.T) {
	env := newLeaveTestEnv(t)
	env.svc.decideGuard = true
	ctx := authedContext(t, "user-1")

	created, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
	})
	require.NoError(t, err)

	_, err = env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: created.ID, Status: "APPROVED"})
	require.NoError(t, err)

	_, err = env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: created.ID, Status: "REJECTED"})
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)
}

func TestDecideUnknownRequest(t *testing.T) {
	env := newLeaveTestEnv(t)

	_, err := env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: "req-404", Status: "APPROVED"})
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestSummaryUsesLiveTaken(t *testing.T) {
	env := newLeaveTestEnv(t)
	env.users.users = append(env.users.users, user.User{ID: "user-1", Email: "jo@example.com", Role: user.RoleEmployee})
	ctx := authedContext(t, "user-1")

	created, err := env.svc.Apply(ctx, leave.ApplyRequest{
		LeaveType: "PAID",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
	})
	require.NoError(t, err)
	_, err = env.svc.Decide(context.Background(), leave.DecideRequest{RequestID: created.ID, Status: "APPROVED"})
	require.NoError(t, err)

	summary, err := env.svc.Summary(context.Background(), "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Total)
	assert.Equal(t, 3, summary.Taken)
	assert.Equal(t, 9, summary.Balance)
}

func TestSummaryUnknownEmail(t *testing.T) {
	env := newLeaveTestEnv(t)

	_, err := env.svc.Summary(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestSetBalanceSingleUser(t *testing.T) {
	env := newLeaveTestEnv(t)
	env.users.users = append(env.users.users, user.User{ID: "user-1", Email: "jo@example.com", Role: user.RoleEmployee})

	err := env.svc.SetBalance(context.Background(), leave.SetBalanceRequest{TotalLeaves: 20, Employee: "jo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 20, env.balances.balances["user-1"].TotalLeaves)
}

func TestSetBalanceAllEmployees(t *testing.T) {
	env := newLeaveTestEnv(t)
	env.users.users = append(env.users.users,
		user.User{ID: "user-1", Email: "jo@example.com", Role: user.RoleEmployee},
		user.User{ID: "user-2", Email: "sam@example.com", Role: user.RoleEmployee},
		user.User{ID: "admin-1", Email: "boss@example.com", Role: user.RoleAdmin},
	)

	err := env.svc.SetBalance(context.Background(), leave.SetBalanceRequest{TotalLeaves: 15, Employee: "all"})
	require.NoError(t, err)
	assert.Equal(t, 15, env.balances.balances["user-1"].TotalLeaves)
	assert.Equal(t, 15, env.balances.balances["user-2"].TotalLeaves)
	assert.NotContains(t, env.balances.balances, "admin-1")
}

func TestSetBalanceRejectsNegative(t *testing.T) {
	env := newLeaveTestEnv(t)

	err := env.svc.SetBalance(context.Background(), leave.SetBalanceRequest{TotalLeaves: -1})
	assert.Error(t, err)
}

func TestMyBalanceUsesStoredCounter(t *testing.T) {
	env := newLeaveTestEnv(t)
	ctx := authedContext(t, "user-1")

	balance, err := env.svc.MyBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, balance.TotalLeaves)
	assert.Equal(t, 0, balance.LeavesTaken)
	assert.Equal(t, 12, balance.Balance)

	// The stored counter drives this path, not the approved-days sum.
	env.balances.balances["user-1"].LeavesTaken = 5
	balance, err = env.svc.MyBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, balance.LeavesTaken)
	assert.Equal(t, 7, balance.Balance)
}
