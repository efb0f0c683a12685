package queries

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock

import (
	"context"

	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*room.Room, error)
	FindByRef(ctx context.Context, propertyID uuid.UUID, ref room.Ref) (*room.Room, error)
}

type RoomQueries interface {
	List(ctx context.Context, propertyID uuid.UUID) ([]*RoomView, error)
	Get(ctx context.Context, propertyID uuid.UUID, ref room.Ref) (*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomReadStore
}

func NewRoomQueries(rooms RoomReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) List(ctx context.Context, propertyID uuid.UUID) ([]*RoomView, error) {
	rooms, err := q.rooms.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]*RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomViewFrom(r))
	}
	return out, nil
}

func (q *roomQueriesImpl) Get(ctx context.Context, propertyID uuid.UUID, ref room.Ref) (*RoomView, error) {
	r, err := findRoom(ctx, q.rooms, propertyID, ref)
	if err != nil {
		return nil, err
	}
	return RoomViewFrom(r), nil
}

func findRoom(ctx context.Context, rooms RoomReadStore, propertyID uuid.UUID, ref room.Ref) (*room.Room, error) {
	r, err := rooms.FindByRef(ctx, propertyID, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	// ids are global, so a room of another property must look absent
	if r.PropertyID() != propertyID {
		return nil, ErrRoomNotFound
	}
	return r, nil
}
