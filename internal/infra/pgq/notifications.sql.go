package pgq

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)
`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt)
	return err
}

const listNotificationJobsByTopic = `
SELECT id, kind, topic, payload, status, attempts, run_at, created_at
FROM notification_jobs
WHERE topic = $1
ORDER BY created_at, id
`

func (q *Queries) ListNotificationJobsByTopic(ctx context.Context, db DBTX, topic string) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, listNotificationJobsByTopic, topic)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJob
	for rows.Next() {
		var i NotificationJob
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.RunAt,
			&i.CreatedAt,
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
