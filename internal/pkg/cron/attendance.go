package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// StaleSessionCloser is the part of the attendance service the jobs need.
type StaleSessionCloser interface {
	CloseStaleSessions(ctx context.Context) (int, error)
}

type AttendanceJobs struct {
	closer   StaleSessionCloser
	interval time.Duration
}

func NewAttendanceJobs(closer StaleSessionCloser, interval time.Duration) *AttendanceJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AttendanceJobs{
		closer:   closer,
		interval: interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", j.interval, j.AutoCloseStaleAttendances)
}

// AutoCloseStaleAttendances checks out sessions left open on previous days.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	slog.Info("Cron: Starting auto-close stale attendances job")

	closed, err := j.closer.CloseStaleSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to close stale sessions: %w", err)
	}

	if closed == 0 {
		slog.Info("Cron: No stale attendances found")
		return nil
	}

	slog.Info("Cron: Auto-close stale attendances completed", "closed", closed)
	return nil
}
