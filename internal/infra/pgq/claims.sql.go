package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Nights already held by someone else are skipped, so fewer rows than nights means a collision.
// The statement waits on a concurrent uncommitted claim for the same night.
const insertNightClaims = `
INSERT INTO room_night_claims (room_id, night, owner_kind, owner_id)
SELECT $1, night, $3, $4 FROM unnest($2::date[]) AS night
ON CONFLICT (room_id, night) DO NOTHING
`

type InsertNightClaimsParams struct {
	RoomID    uuid.UUID
	Nights    []pgtype.Date
	OwnerKind string
	OwnerID   uuid.UUID
}

func (q *Queries) InsertNightClaims(ctx context.Context, db DBTX, arg InsertNightClaimsParams) (int64, error) {
	tag, err := db.Exec(ctx, insertNightClaims, arg.RoomID, arg.Nights, arg.OwnerKind, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const transferNightClaims = `
UPDATE room_night_claims
SET owner_kind = $3, owner_id = $4
WHERE owner_kind = $1 AND owner_id = $2
`

type TransferNightClaimsParams struct {
	FromKind string
	FromID   uuid.UUID
	ToKind   string
	ToID     uuid.UUID
}

func (q *Queries) TransferNightClaims(ctx context.Context, db DBTX, arg TransferNightClaimsParams) (int64, error) {
	tag, err := db.Exec(ctx, transferNightClaims, arg.FromKind, arg.FromID, arg.ToKind, arg.ToID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseNightClaims = `DELETE FROM room_night_claims WHERE owner_kind = $1 AND owner_id = $2`

func (q *Queries) ReleaseNightClaims(ctx context.Context, db DBTX, ownerKind string, ownerID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, releaseNightClaims, ownerKind, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listForeignNightClaims = `
SELECT night, owner_kind, owner_id
FROM room_night_claims
WHERE room_id = $1 AND night = ANY($2::date[]) AND NOT (owner_kind = $3 AND owner_id = $4)
ORDER BY night
`

type ListForeignNightClaimsParams struct {
	RoomID    uuid.UUID
	Nights    []pgtype.Date
	OwnerKind string
	OwnerID   uuid.UUID
}

func (q *Queries) ListForeignNightClaims(ctx context.Context, db DBTX, arg ListForeignNightClaimsParams) ([]RoomNightClaim, error) {
	rows, err := db.Query(ctx, listForeignNightClaims, arg.RoomID, arg.Nights, arg.OwnerKind, arg.OwnerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (RoomNightClaim, error) {
		var i RoomNightClaim
		err := row.Scan(&i.Night, &i.OwnerKind, &i.OwnerID)
		i.RoomID = arg.RoomID
		return i, err
	})
}
