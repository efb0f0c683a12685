package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, user_id, endpoint, request_hash, status, result_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key, userID uuid.UUID) (IdempotencyKey, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, key, userID)
	var i IdempotencyKey
	err := row.Scan(
		&i.Key,
		&i.UserID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const completeIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'completed', result_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2
`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, key, userID, resultID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, completeIdempotencyKey, key, userID, resultID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// An expired key may be taken over by a new request, whatever it carried before.
const claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'processing', request_hash = $3, result_id = NULL, expires_at = $4, updated_at = now()
WHERE key = $1 AND user_id = $2 AND expires_at <= $5
`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
	Now         pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.UserID, arg.RequestHash, arg.ExpiresAt, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
