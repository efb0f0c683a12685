package readstore

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/readstore/notification.go -package=readstoremock

import (
	"context"
	"encoding/json"
	"time"

	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationJobsByTopic(ctx context.Context, db pgq.DBTX, topic string) ([]pgq.NotificationJob, error)
}

// NotificationJob is an outbox entry as a delivery worker would see it.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  map[string]any
	Status   string
	Attempts int32
	RunAt    time.Time
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      pgq.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db pgq.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ListByTopic(ctx context.Context, topic string) ([]*NotificationJob, error) {
	rows, err := s.queries.ListNotificationJobsByTopic(ctx, s.db, topic)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	out := make([]*NotificationJob, 0, len(rows))
	for _, row := range rows {
		job := &NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Status:   row.Status,
			Attempts: row.Attempts,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		}
		if err := json.Unmarshal(row.Payload, &job.Payload); err != nil {
			return nil, infra.WrapRepoErr("failed to decode notification payload", err, infra.KindDBFailure)
		}
		out = append(out, job)
	}
	return out, nil
}
