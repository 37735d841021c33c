package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vehicle-rental/internal/infra/messaging"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	eventSource = "vehicle-rental"
	retryDelay  = 30 * time.Second
)

type Publisher interface {
	Publish(ctx context.Context, msg messaging.Message) error
}

type JobQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobRetryParams) error
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Relay moves queued notification jobs to the message broker. Jobs are claimed
// with FOR UPDATE SKIP LOCKED so several instances can poll the same table.
type Relay struct {
	db        TxBeginner
	queries   JobQueries
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
}

func NewRelay(db TxBeginner, queries JobQueries, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *Relay {
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RelayBatch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("outbox relay batch failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RelayBatch publishes one batch of due jobs and reports how many were sent.
// A failed publish only reschedules that job; the batch carries on.
func (r *Relay) RelayBatch(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to begin outbox transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback outbox transaction", "error", rollbackErr)
		}
	}()

	now := r.clock.Now()
	jobs, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: r.cfg.BatchSize,
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to claim notification jobs")
	}

	sent := 0
	for _, job := range jobs {
		if pubErr := r.publisher.Publish(ctx, toMessage(job)); pubErr != nil {
			slog.Warn("failed to publish notification job",
				"job_id", job.ID,
				"kind", job.Kind,
				"attempt", job.Attempts+1,
				"error", pubErr)
			if err := r.queries.MarkNotificationJobRetry(ctx, tx, sqlc.MarkNotificationJobRetryParams{
				LastError:   pgconv.StringToPgtype(pubErr.Error()),
				MaxAttempts: r.cfg.MaxAttempts,
				NextRunAt:   pgconv.TimeToPgtype(now.Add(retryDelay)),
				ID:          job.ID,
			}); err != nil {
				return sent, errs.Wrap(err, "failed to reschedule notification job")
			}
			continue
		}

		if err := r.queries.MarkNotificationJobSent(ctx, tx, job.ID); err != nil {
			return sent, errs.Wrap(err, "failed to mark notification job sent")
		}
		sent++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to commit outbox transaction")
	}
	return sent, nil
}

func toMessage(job sqlc.NotificationJobs) messaging.Message {
	return messaging.Message{
		Topic: job.Topic,
		Key:   job.AggregateID.String(),
		Value: job.Payload,
		Headers: map[string]string{
			messaging.HeaderEventID:   job.ID.String(),
			messaging.HeaderEventType: job.Kind,
			messaging.HeaderSource:    eventSource,
		},
		Timestamp: pgconv.TimeFromPgtype(job.CreatedAt),
	}
}
