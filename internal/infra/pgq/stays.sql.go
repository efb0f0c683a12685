package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const stayColumns = `id, property_id, room_id, room_number, booking_id, guest_name, guest_phone, guest_email,
	id_proof, check_in, check_out, tariff, ledger, additional_charges, discounts,
	advance_payment, advance_payment_mode, final_payment, final_payment_mode, notes, status,
	billing_complete, override_by, override_reason, checked_out_at, created_by, created_at, updated_at`

func scanStay(row pgx.Row) (Stay, error) {
	var i Stay
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.RoomID,
		&i.RoomNumber,
		&i.BookingID,
		&i.GuestName,
		&i.GuestPhone,
		&i.GuestEmail,
		&i.IDProof,
		&i.CheckIn,
		&i.CheckOut,
		&i.Tariff,
		&i.Ledger,
		&i.AdditionalCharges,
		&i.Discounts,
		&i.AdvancePayment,
		&i.AdvancePaymentMode,
		&i.FinalPayment,
		&i.FinalPaymentMode,
		&i.Notes,
		&i.Status,
		&i.BillingComplete,
		&i.OverrideBy,
		&i.OverrideReason,
		&i.CheckedOutAt,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectStays(rows pgx.Rows, err error) ([]Stay, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Stay
	for rows.Next() {
		i, err := scanStay(rows)
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

const createStay = `
INSERT INTO stays (
	id, property_id, room_id, room_number, booking_id, guest_name, guest_phone, guest_email,
	id_proof, check_in, check_out, tariff, ledger, additional_charges, discounts,
	advance_payment, advance_payment_mode, notes, status, override_by, override_reason,
	created_by, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $23
)
`

type CreateStayParams struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	RoomID             uuid.UUID
	RoomNumber         string
	BookingID          pgtype.UUID
	GuestName          string
	GuestPhone         string
	GuestEmail         string
	IDProof            string
	CheckIn            pgtype.Date
	CheckOut           pgtype.Date
	Tariff             int64
	Ledger             []byte
	AdditionalCharges  []byte
	Discounts          []byte
	AdvancePayment     int64
	AdvancePaymentMode string
	Notes              string
	Status             string
	OverrideBy         pgtype.UUID
	OverrideReason     pgtype.Text
	CreatedBy          uuid.UUID
	CreatedAt          pgtype.Timestamptz
}

func (q *Queries) CreateStay(ctx context.Context, db DBTX, arg CreateStayParams) error {
	_, err := db.Exec(ctx, createStay,
		arg.ID,
		arg.PropertyID,
		arg.RoomID,
		arg.RoomNumber,
		arg.BookingID,
		arg.GuestName,
		arg.GuestPhone,
		arg.GuestEmail,
		arg.IDProof,
		arg.CheckIn,
		arg.CheckOut,
		arg.Tariff,
		arg.Ledger,
		arg.AdditionalCharges,
		arg.Discounts,
		arg.AdvancePayment,
		arg.AdvancePaymentMode,
		arg.Notes,
		arg.Status,
		arg.OverrideBy,
		arg.OverrideReason,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const getStay = `SELECT ` + stayColumns + ` FROM stays WHERE id = $1`

func (q *Queries) GetStay(ctx context.Context, db DBTX, id uuid.UUID) (Stay, error) {
	return scanStay(db.QueryRow(ctx, getStay, id))
}

// Serializes order linking and checkout on one stay.
const lockStay = `SELECT ` + stayColumns + ` FROM stays WHERE id = $1 FOR UPDATE`

func (q *Queries) LockStay(ctx context.Context, db DBTX, id uuid.UUID) (Stay, error) {
	return scanStay(db.QueryRow(ctx, lockStay, id))
}

const updateStayLedger = `UPDATE stays SET ledger = $2, updated_at = $3 WHERE id = $1 AND status = 'checked-in'`

func (q *Queries) UpdateStayLedger(ctx context.Context, db DBTX, id uuid.UUID, ledger []byte, updatedAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, updateStayLedger, id, ledger, updatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const checkoutStay = `
UPDATE stays
SET additional_charges = $2,
	discounts = $3,
	final_payment = $4,
	final_payment_mode = $5,
	notes = $6,
	status = $7,
	billing_complete = $8,
	checked_out_at = $9,
	updated_at = $9
WHERE id = $1 AND status = 'checked-in'
`

type CheckoutStayParams struct {
	ID                uuid.UUID
	AdditionalCharges []byte
	Discounts         []byte
	FinalPayment      int64
	FinalPaymentMode  string
	Notes             string
	Status            string
	BillingComplete   bool
	CheckedOutAt      pgtype.Timestamptz
}

func (q *Queries) CheckoutStay(ctx context.Context, db DBTX, arg CheckoutStayParams) (int64, error) {
	tag, err := db.Exec(ctx, checkoutStay,
		arg.ID,
		arg.AdditionalCharges,
		arg.Discounts,
		arg.FinalPayment,
		arg.FinalPaymentMode,
		arg.Notes,
		arg.Status,
		arg.BillingComplete,
		arg.CheckedOutAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listActiveStaysByRoom = `
SELECT ` + stayColumns + `
FROM stays
WHERE room_id = $1 AND status = 'checked-in'
ORDER BY check_in
`

func (q *Queries) ListActiveStaysByRoom(ctx context.Context, db DBTX, roomID uuid.UUID) ([]Stay, error) {
	return collectStays(db.Query(ctx, listActiveStaysByRoom, roomID))
}

// Closed stays are included so past days keep their occupancy.
const listStaysByProperty = `
SELECT ` + stayColumns + `
FROM stays
WHERE property_id = $1 AND check_out >= $2 AND check_in <= $3
ORDER BY check_in
`

func (q *Queries) ListStaysByProperty(ctx context.Context, db DBTX, propertyID uuid.UUID, since, until pgtype.Date) ([]Stay, error) {
	return collectStays(db.Query(ctx, listStaysByProperty, propertyID, since, until))
}
