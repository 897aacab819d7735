package attendance

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetOrCreate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	k := f.key(userID, date)
	if existing, ok := f.records[k]; ok {
		return *existing, nil
	}
	f.nextID++
	record := &attendance.Attendance{
		ID:     fmt.Sprintf("att-%d", f.nextID),
		UserID: userID,
		Date:   date,
	}
	f.records[k] = record
	return *record, nil
}

func (f *fakeAttendanceRepo) SetSignIn(ctx context.Context, id string, signIn time.Time, status string) (attendance.Attendance, error) {
	for _, record := range f.records {
		if record.ID == id {
			if record.SignIn != nil {
				return attendance.Attendance{}, attendance.ErrAlreadySignedIn
			}
			record.SignIn = &signIn
			record.Status = status
			return *record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) SetSignOut(ctx context.Context, id string, signOut time.Time, workingHours float64, status string) (attendance.Attendance, error) {
	for _, record := range f.records {
		if record.ID == id {
			if record.SignOut != nil {
				return attendance.Attendance{}, attendance.ErrAlreadySignedOut
			}
			record.SignOut = &signOut
			record.WorkingHours = workingHours
			record.Status = status
			return *record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	if record, ok := f.records[f.key(userID, date)]; ok {
		copied := *record
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, *record)
		}
	}
	// Most recent date first, matching the storage ordering.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (f *fakeAttendanceRepo) Summarize(ctx context.Context, userID string) (attendance.Summary, error) {
	var summary attendance.Summary
	for _, record := range f.records {
		if record.UserID != userID || record.SignOut == nil {
			continue
		}
		switch record.Status {
		case policy.StatusPresent:
			summary.PresentDays++
		case policy.StatusHalfDay:
			summary.HalfDays++
		case policy.StatusAbsent:
			summary.AbsentDays++
		}
		summary.TotalWorkingHours += record.WorkingHours
	}
	return summary, nil
}

func (f *fakeAttendanceRepo) CloseOpenBefore(ctx context.Context, date time.Time) (int, error) {
	closed := 0
	for _, record := range f.records {
		if record.SignOut == nil && record.Date.Before(date) && record.Status != policy.StatusAbsent {
			record.Status = policy.StatusAbsent
			closed++
		}
	}
	return closed, nil
}

func (f *fakeAttendanceRepo) ListForReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if filter.UserID != "" && filter.UserID != "all" && record.UserID != filter.UserID {
			continue
		}
		if filter.Date != "" && record.Date.Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, *record)
	}
	return out, nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSignIn(t *testing.T) {
	ctx := authedContext(t, "user-1")
	repo := newFakeAttendanceRepo()
	signInAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, signInAt)

	result, err := svc.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, "2026-03-02 09:00:00", result.SignIn)

	_, err = svc.SignIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadySignedIn)
}

func TestSignOutWithoutSignIn(t *testing.T) {
	ctx := authedContext(t, "user-1")
	svc := newTestService(newFakeAttendanceRepo(), time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.SignOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoSignIn)
}

func TestSignOutClassification(t *testing.T) {
	tests := []struct {
		name          string
		signOutAt     time.Time
		expectedHours float64
		expectedState string
	}{
		{
			name:          "full day",
			signOutAt:     time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC),
			expectedHours: 8.5,
			expectedState: policy.StatusPresent,
		},
		{
			name:          "half day",
			signOutAt:     time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
			expectedHours: 5,
			expectedState: policy.StatusHalfDay,
		},
		{
			name:          "too short",
			signOutAt:     time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC),
			expectedHours: 3.5,
			expectedState: policy.StatusAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := authedContext(t, "user-1")
			repo := newFakeAttendanceRepo()
			signInAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

			svc := newTestService(repo, signInAt)
			_, err := svc.SignIn(ctx)
			require.NoError(t, err)

			svc.now = func() time.Time { return tt.signOutAt }
			result, err := svc.SignOut(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHours, result.WorkingHours)
			assert.Equal(t, tt.expectedState, result.Status)

			_, err = svc.SignOut(ctx)
			assert.ErrorIs(t, err, attendance.ErrAlreadySignedOut)
		})
	}
}

func TestSummary(t *testing.T) {
	ctx := authedContext(t, "user-1")
	repo := newFakeAttendanceRepo()

	days := []struct {
		day      int
		signOut  time.Time
		expected string
	}{
		{2, time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC), policy.StatusPresent},
		{3, time.Date(2026, 3, 3, 13, 30, 0, 0, time.UTC), policy.StatusHalfDay},
		{4, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC), policy.StatusAbsent},
	}
	for _, d := range days {
		signInAt := time.Date(2026, 3, d.day, 9, 0, 0, 0, time.UTC)
		svc := newTestService(repo, signInAt)
		_, err := svc.SignIn(ctx)
		require.NoError(t, err)
		svc.now = func() time.Time { return d.signOut }
		_, err = svc.SignOut(ctx)
		require.NoError(t, err)
	}

	svc := newTestService(repo, time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC))
	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 14.0, summary.TotalWorkingHours)
}

func TestHistoryOrderedMostRecentFirst(t *testing.T) {
	ctx := authedContext(t, "user-1")
	repo := newFakeAttendanceRepo()

	// Created out of order on purpose.
	for _, day := range []int{3, 9, 5} {
		_, err := repo.GetOrCreate(context.Background(), "user-1", time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
	}

	svc := newTestService(repo, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	records, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2026-03-09", records[0].Date)
	assert.Equal(t, "2026-03-05", records[1].Date)
	assert.Equal(t, "2026-03-03", records[2].Date)
}

func TestAdminReportFilterValidation(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), time.Now())

	_, err := svc.AdminReport(context.Background(), attendance.ReportFilter{Date: "02-03-2026"})
	assert.Error(t, err)
}

func TestAdminReportFiltering(t *testing.T) {
	repo := newFakeAttendanceRepo()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	_, err := repo.GetOrCreate(context.Background(), "user-1", day)
	require.NoError(t, err)
	_, err = repo.GetOrCreate(context.Background(), "user-2", day)
	require.NoError(t, err)
	_, err = repo.GetOrCreate(context.Background(), "user-1", otherDay)
	require.NoError(t, err)

	svc := newTestService(repo, time.Now())

	all, err := svc.AdminReport(context.Background(), attendance.ReportFilter{UserID: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byUser, err := svc.AdminReport(context.Background(), attendance.ReportFilter{UserID: "user-2"})
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byDate, err := svc.AdminReport(context.Background(), attendance.ReportFilter{Date: "2026-03-02"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}
