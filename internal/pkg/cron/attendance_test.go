package cron

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	cutoff time.Time
	closed int
}

func (s *stubAttendanceRepo) CloseOpenBefore(ctx context.Context, date time.Time) (int, error) {
	s.cutoff = date
	return s.closed, nil
}

func TestCloseOpenAttendancesUsesLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	repo := &stubAttendanceRepo{closed: 2}
	jobs := NewAttendanceJobs(repo, loc)
	// 2026-03-02 20:30 UTC is already 2026-03-03 in Kolkata.
	jobs.now = func() time.Time { return time.Date(2026, 3, 2, 20, 30, 0, 0, time.UTC) }

	require.NoError(t, jobs.CloseOpenAttendances(context.Background()))
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), repo.cutoff)
}

func TestSchedulerRunOnce(t *testing.T) {
	scheduler := NewScheduler()
	ran := 0
	scheduler.AddJob("count", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})

	scheduler.RunOnce(context.Background())
	assert.Equal(t, 1, ran)
}
