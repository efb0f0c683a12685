package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

import (
	"context"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Booking, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      pgq.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgq.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := s.queries.GetBooking(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingFromInfra(row), nil
}
