package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
)

// AttendanceJobs reconciles attendance rows the lifecycle left dangling.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location

	// now is swappable in tests.
	now func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, loc *time.Location) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_open_attendances", 1*time.Hour, j.CloseOpenAttendances)
}

// CloseOpenAttendances marks rows from past days that were signed in
// but never signed out as ABSENT. Such rows carry the tentative
// sign-in status and zero hours; once their day has passed no sign-out
// can arrive, so the tentative status is wrong until corrected here.
func (j *AttendanceJobs) CloseOpenAttendances(ctx context.Context) error {
	local := j.now().In(j.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	closed, err := j.attendanceRepo.CloseOpenBefore(ctx, today)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Closed dangling attendance rows", "count", closed)
	}
	return nil
}
