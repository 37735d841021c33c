// source: notification_jobs.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, aggregate_id, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Status      string             `json:"status"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.AggregateID,
		arg.Payload,
		arg.RunAt,
		arg.Status,
	)
	return err
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
SELECT id, kind, topic, aggregate_id, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueNotificationJobsParams struct {
	RunAt pgtype.Timestamptz `json:"run_at"`
	Limit int32              `json:"limit"`
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.RunAt, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NotificationJobs{}
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.AggregateID,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markNotificationJobSent = `-- name: MarkNotificationJobSent :exec
UPDATE notification_jobs
SET status     = 'sent',
    attempts   = attempts + 1,
    last_error = NULL,
    updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markNotificationJobSent, id)
	return err
}

const markNotificationJobRetry = `-- name: MarkNotificationJobRetry :exec
UPDATE notification_jobs
SET attempts   = attempts + 1,
    last_error = $1,
    status     = CASE WHEN attempts + 1 >= $2::int THEN 'failed' ELSE 'queued' END,
    run_at     = $3,
    updated_at = now()
WHERE id = $4
`

type MarkNotificationJobRetryParams struct {
	LastError   pgtype.Text        `json:"last_error"`
	MaxAttempts int32              `json:"max_attempts"`
	NextRunAt   pgtype.Timestamptz `json:"next_run_at"`
	ID          uuid.UUID          `json:"id"`
}

func (q *Queries) MarkNotificationJobRetry(ctx context.Context, db DBTX, arg MarkNotificationJobRetryParams) error {
	_, err := db.Exec(ctx, markNotificationJobRetry,
		arg.LastError,
		arg.MaxAttempts,
		arg.NextRunAt,
		arg.ID,
	)
	return err
}
