package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgq.DBTX, arg pgq.CreateBookingParams) error
	LockBooking(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Booking, error)
	UpdateBookingStatus(ctx context.Context, db pgq.DBTX, arg pgq.UpdateBookingStatusParams) (int64, error)
	ListHoldingBookingsByRoom(ctx context.Context, db pgq.DBTX, roomID uuid.UUID, since pgtype.Date) ([]pgq.Booking, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgq.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgq.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx pgq.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.LockBooking(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingFromInfra(row), nil
}

func (r *BookingRepository) SaveStatus(ctx context.Context, tx pgq.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, converter.BookingStatusToInfra(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ListHoldingByRoom(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID, since calendar.Date) ([]*booking.Booking, error) {
	rows, err := r.queries.ListHoldingBookingsByRoom(ctx, tx, roomID, converter.DateToInfra(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings of room", err)
	}
	return converter.BookingsFromInfra(rows), nil
}
