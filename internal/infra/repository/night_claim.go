package repository

//go:generate mockgen -source=night_claim.go -destination=../../../tests/mock/repository/night_claim.go -package=repositorymock

import (
	"context"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NightClaimWriteQueries interface {
	InsertNightClaims(ctx context.Context, db pgq.DBTX, arg pgq.InsertNightClaimsParams) (int64, error)
	ListForeignNightClaims(ctx context.Context, db pgq.DBTX, arg pgq.ListForeignNightClaimsParams) ([]pgq.RoomNightClaim, error)
	TransferNightClaims(ctx context.Context, db pgq.DBTX, arg pgq.TransferNightClaimsParams) (int64, error)
	ReleaseNightClaims(ctx context.Context, db pgq.DBTX, ownerKind string, ownerID uuid.UUID) (int64, error)
}

// NightClaimRepository keeps one row per occupied room night. The primary key on
// (room_id, night) is what makes two holders for the same night impossible.
// A collision is reported with the nights and owners already in the table.
type NightClaimRepository struct {
	queries NightClaimWriteQueries
	db      pgq.DBTX
}

func NewNightClaimRepository(queries NightClaimWriteQueries, db pgq.DBTX) *NightClaimRepository {
	return &NightClaimRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NightClaimRepository) Claim(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID, nights []calendar.Date, owner shared.ClaimOwner) error {
	if len(nights) == 0 {
		return nil
	}
	dates := make([]pgtype.Date, 0, len(nights))
	for _, n := range nights {
		dates = append(dates, converter.DateToInfra(n))
	}
	inserted, err := r.queries.InsertNightClaims(ctx, tx, pgq.InsertNightClaimsParams{
		RoomID:    roomID,
		Nights:    dates,
		OwnerKind: owner.Kind,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to claim room nights", err)
	}
	if inserted == int64(len(nights)) {
		return nil
	}

	rows, err := r.queries.ListForeignNightClaims(ctx, tx, pgq.ListForeignNightClaimsParams{
		RoomID:    roomID,
		Nights:    dates,
		OwnerKind: owner.Kind,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to load colliding room nights", err)
	}
	// the shortfall was nights this owner already held
	if len(rows) == 0 {
		return nil
	}
	taken := make([]shared.NightClaim, 0, len(rows))
	for _, row := range rows {
		taken = append(taken, shared.NightClaim{
			Night: converter.DateFromInfra(row.Night),
			Owner: shared.ClaimOwner{Kind: row.OwnerKind, ID: row.OwnerID},
		})
	}
	return &shared.ClaimCollisionError{Taken: taken}
}

func (r *NightClaimRepository) Transfer(ctx context.Context, tx pgq.DBTX, from, to shared.ClaimOwner) error {
	_, err := r.queries.TransferNightClaims(ctx, tx, pgq.TransferNightClaimsParams{
		FromKind: from.Kind,
		FromID:   from.ID,
		ToKind:   to.Kind,
		ToID:     to.ID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to transfer room nights", err)
	}
	return nil
}

func (r *NightClaimRepository) Release(ctx context.Context, tx pgq.DBTX, owner shared.ClaimOwner) error {
	if _, err := r.queries.ReleaseNightClaims(ctx, tx, owner.Kind, owner.ID); err != nil {
		return infra.WrapRepoErr("failed to release room nights", err)
	}
	return nil
}
