package reminder

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/skherchache-oss/memoraid-app-sub001/internal/capsule"
)

// DefaultInterval is how often the background check runs.
const DefaultInterval = time.Hour

// DueLister supplies the capsules currently due for review.
type DueLister interface {
	Due(ctx context.Context, now time.Time) ([]capsule.Capsule, error)
}

// Notifier receives the due capsules found by a check.
type Notifier interface {
	NotifyDue(capsules []capsule.Capsule) error
}

// Reminder periodically checks for due capsules and hands them to a
// Notifier. Checks with nothing due are silent.
type Reminder struct {
	lister    DueLister
	notifier  Notifier
	scheduler *gocron.Scheduler
	interval  time.Duration
}

// New creates a Reminder checking at the given interval. A non-positive
// interval falls back to DefaultInterval.
func New(lister DueLister, notifier Notifier, interval time.Duration) *Reminder {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reminder{
		lister:    lister,
		notifier:  notifier,
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
	}
}

// Start schedules the periodic check and returns without blocking.
func (r *Reminder) Start() error {
	_, err := r.scheduler.Every(r.interval).Do(r.check)
	if err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	r.scheduler.StartAsync()
	return nil
}

// Stop halts the scheduled checks.
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

func (r *Reminder) check() {
	if err := r.RunOnce(context.Background(), time.Now()); err != nil {
		log.Printf("reminder check failed: %v", err)
	}
}

// RunOnce performs a single due-check and notifies if anything is due.
func (r *Reminder) RunOnce(ctx context.Context, now time.Time) error {
	due, err := r.lister.Due(ctx, now)
	if err != nil {
		return fmt.Errorf("list due capsules: %w", err)
	}
	if len(due) == 0 {
		return nil
	}
	return r.notifier.NotifyDue(due)
}

// ConsoleNotifier prints due reminders to a writer.
type ConsoleNotifier struct {
	Out io.Writer
}

// NotifyDue writes one line per due capsule.
func (n ConsoleNotifier) NotifyDue(capsules []capsule.Capsule) error {
	if _, err := fmt.Fprintf(n.Out, "%d capsule(s) due for review:\n", len(capsules)); err != nil {
		return err
	}
	for _, c := range capsules {
		if _, err := fmt.Fprintf(n.Out, "  %s  %s\n", c.ID, c.Title); err != nil {
			return err
		}
	}
	return nil
}
