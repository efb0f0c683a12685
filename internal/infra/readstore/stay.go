package readstore

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/readstore/stay.go -package=readstoremock

import (
	"context"

	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StayReadQueries interface {
	GetStay(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Stay, error)
}

type StayReadStore struct {
	queries StayReadQueries
	db      pgq.DBTX
}

func NewStayReadStore(queries StayReadQueries, db pgq.DBTX) *StayReadStore {
	return &StayReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *StayReadStore) FindByID(ctx context.Context, id uuid.UUID) (*stay.Stay, error) {
	row, err := s.queries.GetStay(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stay not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get stay", err)
	}
	st, err := converter.StayFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode stay", err, infra.KindDBFailure)
	}
	return st, nil
}
