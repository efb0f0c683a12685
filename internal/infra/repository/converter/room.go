package converter

import (
	"math"

	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"
)

func RoomToInfra(r *room.Room) pgq.CreateRoomParams {
	amenities := r.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return pgq.CreateRoomParams{
		ID:         r.ID(),
		PropertyID: r.PropertyID(),
		Number:     r.Number(),
		RoomType:   r.Type(),
		Floor:      r.Floor(),
		Capacity:   clampInt32(r.Capacity()),
		Tariff:     r.Tariff().Amount(),
		Amenities:  amenities,
		Status:     r.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RoomStatusToInfra(r *room.Room) pgq.UpdateRoomStatusParams {
	return pgq.UpdateRoomStatusParams{
		ID:           r.ID(),
		Status:       r.Status().String(),
		ActiveStayID: pgconv.UUIDPtrToPgtype(r.ActiveStayID()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomFromInfra(row pgq.Room) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		row.PropertyID,
		row.Number,
		row.RoomType,
		row.Floor,
		int(row.Capacity),
		money.New(row.Tariff),
		row.Amenities,
		room.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.ActiveStayID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func RoomsFromInfra(rows []pgq.Room) []*room.Room {
	out := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, RoomFromInfra(row))
	}
	return out
}

func clampInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}
