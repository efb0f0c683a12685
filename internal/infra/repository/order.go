package repository

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock

import (
	"context"

	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	LockOrder(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Order, error)
	MarkOrderLinked(ctx context.Context, db pgq.DBTX, orderID, stayID uuid.UUID) (int64, error)
	MarkOrdersBilled(ctx context.Context, db pgq.DBTX, stayID uuid.UUID, orderIDs []uuid.UUID) (int64, error)
}

// OrderRepository touches only the stay-related columns of point-of-sale orders.
type OrderRepository struct {
	queries OrderWriteQueries
	db      pgq.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db pgq.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*shared.OrderSnapshot, error) {
	row, err := r.queries.LockOrder(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return &shared.OrderSnapshot{
		ID:              row.ID,
		PropertyID:      row.PropertyID,
		Amount:          row.Amount,
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		LinkedToStayID:  pgconv.UUIDPtrFromPgtype(row.LinkedToStayID),
		BilledViaStayID: pgconv.UUIDPtrFromPgtype(row.BilledViaStayID),
	}, nil
}

func (r *OrderRepository) MarkLinked(ctx context.Context, tx pgq.DBTX, orderID, stayID uuid.UUID) (bool, error) {
	n, err := r.queries.MarkOrderLinked(ctx, tx, orderID, stayID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to link order", err)
	}
	return n > 0, nil
}

func (r *OrderRepository) MarkBilled(ctx context.Context, tx pgq.DBTX, stayID uuid.UUID, orderIDs []uuid.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}
	if _, err := r.queries.MarkOrdersBilled(ctx, tx, stayID, orderIDs); err != nil {
		return infra.WrapRepoErr("failed to mark orders billed", err)
	}
	return nil
}
