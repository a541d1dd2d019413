package jobs

import (
	"context"
	"log/slog"

	"ordersync/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every second.
const DefaultOutboxRelaySchedule = "* * * * * *"

// OutboxRelayer publishes pending outbox messages.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes committed order events to the broker on a schedule.
type OutboxRelayJob struct {
	handler  OutboxRelayer
	cmd      commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron
// expression; blank selects DefaultOutboxRelaySchedule.
func NewOutboxRelayJob(
	handler OutboxRelayer,
	cmd commands.RelayOutboxCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

func (j *OutboxRelayJob) run() {
	ctx := context.Background()

	sent, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "sent", sent, "error", err)
		return
	}
	if sent > 0 {
		j.logger.DebugContext(ctx, "Outbox messages relayed", "sent", sent)
	}
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
