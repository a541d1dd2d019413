package jobs

import (
	"context"
	"log/slog"

	"ordersync/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxPurgeSchedule runs the purge at the start of every hour.
const DefaultOutboxPurgeSchedule = "0 0 * * * *"

// OutboxPurger deletes relayed outbox messages past retention.
type OutboxPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeOutboxCommand) (int64, error)
}

// OutboxPurgeJob keeps the outbox table small by deleting relayed messages.
type OutboxPurgeJob struct {
	handler  OutboxPurger
	cmd      commands.PurgeOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOutboxPurgeJob(
	handler OutboxPurger,
	cmd commands.PurgeOutboxCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxPurgeJob {
	if schedule == "" {
		schedule = DefaultOutboxPurgeSchedule
	}
	return &OutboxPurgeJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "outbox_purge_job"),
	}
}

func (j *OutboxPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox purge job started", "schedule", j.schedule)
	return nil
}

func (j *OutboxPurgeJob) run() {
	ctx := context.Background()

	deleted, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox purge job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Outbox purged", "deleted", deleted, "retention", j.cmd.Retention().String())
}

func (j *OutboxPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox purge job stopped")
}
