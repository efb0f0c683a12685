package repository

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/repository/stay.go -package=repositorymock

import (
	"context"

	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StayWriteQueries interface {
	CreateStay(ctx context.Context, db pgq.DBTX, arg pgq.CreateStayParams) error
	LockStay(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Stay, error)
	UpdateStayLedger(ctx context.Context, db pgq.DBTX, id uuid.UUID, ledger []byte, updatedAt pgtype.Timestamptz) (int64, error)
	CheckoutStay(ctx context.Context, db pgq.DBTX, arg pgq.CheckoutStayParams) (int64, error)
	ListActiveStaysByRoom(ctx context.Context, db pgq.DBTX, roomID uuid.UUID) ([]pgq.Stay, error)
}

type StayRepository struct {
	queries StayWriteQueries
	db      pgq.DBTX
}

func NewStayRepository(queries StayWriteQueries, db pgq.DBTX) *StayRepository {
	return &StayRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StayRepository) Create(ctx context.Context, tx pgq.DBTX, s *stay.Stay) error {
	params, err := converter.StayToInfra(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode stay", err, infra.KindDBFailure)
	}
	if err = r.queries.CreateStay(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create stay", err)
	}
	return nil
}

func (r *StayRepository) Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*stay.Stay, error) {
	row, err := r.queries.LockStay(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stay not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock stay", err)
	}
	s, err := converter.StayFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode stay", err, infra.KindDBFailure)
	}
	return s, nil
}

// SaveLedger only succeeds while the stay is still checked in.
func (r *StayRepository) SaveLedger(ctx context.Context, tx pgq.DBTX, s *stay.Stay) error {
	ledger, err := converter.LedgerToInfra(s.Ledger())
	if err != nil {
		return infra.WrapRepoErr("failed to encode ledger", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateStayLedger(ctx, tx, s.ID(), ledger, pgconv.TimeToPgtype(s.UpdatedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update stay ledger", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("active stay not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StayRepository) SaveCheckout(ctx context.Context, tx pgq.DBTX, s *stay.Stay) error {
	params, err := converter.StayCheckoutToInfra(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode checkout", err, infra.KindDBFailure)
	}
	n, err := r.queries.CheckoutStay(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to check out stay", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("active stay not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StayRepository) ListActiveByRoom(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID) ([]*stay.Stay, error) {
	rows, err := r.queries.ListActiveStaysByRoom(ctx, tx, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active stays of room", err)
	}
	stays, err := converter.StaysFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode stays", err, infra.KindDBFailure)
	}
	return stays, nil
}
