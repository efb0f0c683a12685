package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, property_id, room_id, room_number, guest_name, guest_phone, guest_email,
	check_in, check_out, guest_count, tariff, status, notes, override_by, override_reason, stay_id,
	created_by, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.RoomID,
		&i.RoomNumber,
		&i.GuestName,
		&i.GuestPhone,
		&i.GuestEmail,
		&i.CheckIn,
		&i.CheckOut,
		&i.GuestCount,
		&i.Tariff,
		&i.Status,
		&i.Notes,
		&i.OverrideBy,
		&i.OverrideReason,
		&i.StayID,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookings(rows pgx.Rows, err error) ([]Booking, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Booking
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBooking = `
INSERT INTO bookings (
	id, property_id, room_id, room_number, guest_name, guest_phone, guest_email,
	check_in, check_out, guest_count, tariff, status, notes, override_by, override_reason,
	created_by, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
`

type CreateBookingParams struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	RoomID         uuid.UUID
	RoomNumber     string
	GuestName      string
	GuestPhone     string
	GuestEmail     string
	CheckIn        pgtype.Date
	CheckOut       pgtype.Date
	GuestCount     int32
	Tariff         int64
	Status         string
	Notes          string
	OverrideBy     pgtype.UUID
	OverrideReason pgtype.Text
	CreatedBy      uuid.UUID
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.PropertyID,
		arg.RoomID,
		arg.RoomNumber,
		arg.GuestName,
		arg.GuestPhone,
		arg.GuestEmail,
		arg.CheckIn,
		arg.CheckOut,
		arg.GuestCount,
		arg.Tariff,
		arg.Status,
		arg.Notes,
		arg.OverrideBy,
		arg.OverrideReason,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const getBooking = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, id))
}

const lockBooking = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

func (q *Queries) LockBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, lockBooking, id))
}

const updateBookingStatus = `
UPDATE bookings
SET status = $2, stay_id = $3, updated_at = $4
WHERE id = $1
`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	Status    string
	StayID    pgtype.UUID
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.StayID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Bookings whose check-out falls before since cannot overlap anything from since on.
const listHoldingBookingsByRoom = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE room_id = $1 AND status IN ('confirmed', 'checked-in') AND check_out >= $2
ORDER BY check_in
`

func (q *Queries) ListHoldingBookingsByRoom(ctx context.Context, db DBTX, roomID uuid.UUID, since pgtype.Date) ([]Booking, error) {
	return collectBookings(db.Query(ctx, listHoldingBookingsByRoom, roomID, since))
}

// A loose window; the overlap itself is decided in Go.
const listHoldingBookingsByProperty = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE property_id = $1 AND status IN ('confirmed', 'checked-in') AND check_out >= $2 AND check_in <= $3
ORDER BY check_in
`

func (q *Queries) ListHoldingBookingsByProperty(ctx context.Context, db DBTX, propertyID uuid.UUID, since, until pgtype.Date) ([]Booking, error) {
	return collectBookings(db.Query(ctx, listHoldingBookingsByProperty, propertyID, since, until))
}
