package repository

//go:generate mockgen -source=room.go -destination=../../../tests/mock/repository/room.go -package=repositorymock

import (
	"context"

	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db pgq.DBTX, arg pgq.CreateRoomParams) error
	LockRoom(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Room, error)
	UpdateRoomStatus(ctx context.Context, db pgq.DBTX, arg pgq.UpdateRoomStatusParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      pgq.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db pgq.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx pgq.DBTX, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, tx, converter.RoomToInfra(rm)); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.LockRoom(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return converter.RoomFromInfra(row), nil
}

func (r *RoomRepository) SaveStatus(ctx context.Context, tx pgq.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoomStatus(ctx, tx, converter.RoomStatusToInfra(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
