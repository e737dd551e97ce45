package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/leave"
)

// LeaveJobs sweeps izin rows that blew past their planned return.
type LeaveJobs struct {
	leaveRepo leave.Repository
	policy    config.LeaveConfig
}

func NewLeaveJobs(leaveRepo leave.Repository, policy config.LeaveConfig) *LeaveJobs {
	return &LeaveJobs{
		leaveRepo: leaveRepo,
		policy:    policy,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_overdue_leaves", 15*time.Minute, j.MarkOverdueLeaves)
}

// MarkOverdueLeaves closes active leaves whose planned return plus the
// grace period has passed without a recorded return. The compare-and-set
// update keeps the sweep safe against a concurrent manual transition.
func (j *LeaveJobs) MarkOverdueLeaves(ctx context.Context) error {
	cutoff := time.Now().Add(-j.policy.GracePeriod)

	overdue, err := j.leaveRepo.ListOverdue(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(overdue) == 0 {
		return nil
	}

	marked := 0
	for _, req := range overdue {
		if req.Status.IsTerminal() {
			continue
		}
		if _, err := j.leaveRepo.UpdateStatus(ctx, req.ID, req.Status, leave.StatusLate, nil, nil); err != nil {
			if err == leave.ErrStaleStatus {
				// Someone transitioned the row while we were sweeping.
				continue
			}
			slog.Error("Cron: Failed to mark leave overdue",
				"leave_id", req.ID,
				"student_id", req.StudentID,
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Overdue leave sweep finished", "candidates", len(overdue), "marked_late", marked)
	return nil
}
