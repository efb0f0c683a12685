package repository

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/repository/idempotency.go -package=repositorymock

import (
	"context"
	"time"

	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.TryInsertIdempotencyKeyParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.ClaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db pgq.DBTX, key, userID, resultID uuid.UUID) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      pgq.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db pgq.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert reports false when the key already exists for the user.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx pgq.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, pgq.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return n > 0, nil
}

// ClaimExpired takes over a key whose previous use has expired. It reports false
// when the key is still live.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx pgq.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, pgq.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n > 0, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx pgq.DBTX, key, userID, resultID uuid.UUID) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, tx, key, userID, resultID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
