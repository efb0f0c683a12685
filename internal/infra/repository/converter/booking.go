package converter

import (
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) pgq.CreateBookingParams {
	params := pgq.CreateBookingParams{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		RoomID:     b.RoomID(),
		RoomNumber: b.RoomNumber(),
		GuestName:  b.Guest().Name(),
		GuestPhone: b.Guest().Phone(),
		GuestEmail: b.Guest().Email(),
		CheckIn:    DateToInfra(b.Period().Start),
		CheckOut:   DateToInfra(b.Period().End),
		GuestCount: clampInt32(b.GuestCount()),
		Tariff:     b.Tariff().Amount(),
		Status:     b.Status().String(),
		Notes:      b.Notes(),
		CreatedBy:  b.CreatedBy(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
	params.OverrideBy, params.OverrideReason = overrideToInfra(b.Override())
	return params
}

func BookingStatusToInfra(b *booking.Booking) pgq.UpdateBookingStatusParams {
	return pgq.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		StayID:    pgconv.UUIDPtrToPgtype(b.StayID()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row pgq.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.PropertyID,
		row.RoomID,
		row.RoomNumber,
		guest.Reconstruct(row.GuestName, row.GuestPhone, row.GuestEmail),
		rangeFromInfra(row.CheckIn, row.CheckOut),
		int(row.GuestCount),
		money.New(row.Tariff),
		booking.Status(row.Status),
		row.Notes,
		overrideFromInfra(row.OverrideBy, row.OverrideReason),
		pgconv.UUIDPtrFromPgtype(row.StayID),
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingsFromInfra(rows []pgq.Booking) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingFromInfra(row))
	}
	return out
}

func overrideToInfra(o *booking.Override) (pgtype.UUID, pgtype.Text) {
	if o == nil {
		return pgtype.UUID{}, pgtype.Text{}
	}
	return pgconv.UUIDToPgtype(o.By), pgconv.StringToPgtype(o.Reason)
}

func overrideFromInfra(by pgtype.UUID, reason pgtype.Text) *booking.Override {
	id := pgconv.UUIDPtrFromPgtype(by)
	if id == nil {
		return nil
	}
	return &booking.Override{By: *id, Reason: pgconv.StringFromPgtype(reason)}
}
