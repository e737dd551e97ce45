package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/billing"
)

// BillingJobs flips unpaid SPP bills to overdue once their period passes.
type BillingJobs struct {
	billRepo billing.Repository
}

func NewBillingJobs(billRepo billing.Repository) *BillingJobs {
	return &BillingJobs{billRepo: billRepo}
}

func (j *BillingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_overdue_bills", 6*time.Hour, j.MarkOverdueBills)
}

// MarkOverdueBills marks every unpaid bill from a previous period as
// overdue. Bills for the current month stay unpaid until the month ends.
func (j *BillingJobs) MarkOverdueBills(ctx context.Context) error {
	now := time.Now()

	count, err := j.billRepo.MarkOverdueBefore(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return err
	}

	if count > 0 {
		slog.Info("Cron: Marked unpaid bills overdue", "count", count)
	}
	return nil
}
