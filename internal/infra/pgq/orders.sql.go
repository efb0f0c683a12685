package pgq

import (
	"context"

	"github.com/google/uuid"
)

const lockOrder = `
SELECT id, property_id, amount, status, payment_status, linked_to_stay_id, billed_via_stay_id
FROM orders
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockOrder(ctx context.Context, db DBTX, id uuid.UUID) (Order, error) {
	row := db.QueryRow(ctx, lockOrder, id)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.Amount,
		&i.Status,
		&i.PaymentStatus,
		&i.LinkedToStayID,
		&i.BilledViaStayID,
	)
	return i, err
}

// The flag is only written when the order is free or already ours, so a
// concurrent link from another stay affects zero rows.
const markOrderLinked = `
UPDATE orders
SET linked_to_stay_id = $2, updated_at = now()
WHERE id = $1
  AND billed_via_stay_id IS NULL
  AND (linked_to_stay_id IS NULL OR linked_to_stay_id = $2)
`

func (q *Queries) MarkOrderLinked(ctx context.Context, db DBTX, orderID, stayID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markOrderLinked, orderID, stayID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markOrdersBilled = `
UPDATE orders
SET billed_via_stay_id = $1, payment_status = 'paid', updated_at = now()
WHERE id = ANY($2::uuid[])
`

func (q *Queries) MarkOrdersBilled(ctx context.Context, db DBTX, stayID uuid.UUID, orderIDs []uuid.UUID) (int64, error) {
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}
	tag, err := db.Exec(ctx, markOrdersBilled, stayID, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
