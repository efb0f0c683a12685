package readstore

//go:generate mockgen -source=room.go -destination=../../../tests/mock/readstore/room.go -package=readstoremock

import (
	"context"

	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Room, error)
	GetRoomByNumber(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID, number string) (pgq.Room, error)
	ListRoomsByProperty(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID) ([]pgq.Room, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      pgq.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db pgq.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *RoomReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*room.Room, error) {
	rows, err := s.queries.ListRoomsByProperty(ctx, s.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return converter.RoomsFromInfra(rows), nil
}

// FindByRef looks a room up by id or by number. An id that belongs to another
// property is returned as is; callers compare the property themselves.
func (s *RoomReadStore) FindByRef(ctx context.Context, propertyID uuid.UUID, ref room.Ref) (*room.Room, error) {
	var (
		row pgq.Room
		err error
	)
	if ref.IsID() {
		row, err = s.queries.GetRoomByID(ctx, s.db, ref.ID())
	} else {
		row, err = s.queries.GetRoomByNumber(ctx, s.db, propertyID, ref.Number())
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return converter.RoomFromInfra(row), nil
}
