package queries

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/queries/stay.go -package=queriesmock

import (
	"context"

	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra"

	"github.com/google/uuid"
)

type StayReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*stay.Stay, error)
}

type StayQueries interface {
	GetByID(ctx context.Context, propertyID, id uuid.UUID) (*StayView, error)
	// GetInvoice rebuilds the bill from the stay's records. It is the same computation checkout uses.
	GetInvoice(ctx context.Context, propertyID, id uuid.UUID) (*InvoiceView, error)
}

type stayQueriesImpl struct {
	stays StayReadStore
}

func NewStayQueries(stays StayReadStore) StayQueries {
	return &stayQueriesImpl{stays: stays}
}

func (q *stayQueriesImpl) GetByID(ctx context.Context, propertyID, id uuid.UUID) (*StayView, error) {
	s, err := q.find(ctx, propertyID, id)
	if err != nil {
		return nil, err
	}
	return StayViewFrom(s), nil
}

func (q *stayQueriesImpl) GetInvoice(ctx context.Context, propertyID, id uuid.UUID) (*InvoiceView, error) {
	s, err := q.find(ctx, propertyID, id)
	if err != nil {
		return nil, err
	}
	return InvoiceViewFrom(stay.BuildInvoice(s)), nil
}

func (q *stayQueriesImpl) find(ctx context.Context, propertyID, id uuid.UUID) (*stay.Stay, error) {
	s, err := q.stays.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, err
	}
	if s.PropertyID() != propertyID {
		return nil, ErrStayNotFound
	}
	return s, nil
}
