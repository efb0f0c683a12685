package repository

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification.go -package=repositorymock

import (
	"context"
	"time"

	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgq.DBTX, arg pgq.CreateNotificationJobParams) error
}

// NotificationRepository writes to the outbox inside the caller's transaction, so a job
// exists exactly when the change it announces was committed.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      pgq.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db pgq.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgq.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	err := r.queries.CreateNotificationJob(ctx, tx, pgq.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
