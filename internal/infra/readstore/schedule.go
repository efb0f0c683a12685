package readstore

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/readstore/schedule.go -package=readstoremock

import (
	"context"

	"room-stay-engine/internal/domain/availability"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReadQueries interface {
	ListRoomsByProperty(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID) ([]pgq.Room, error)
	ListHoldingBookingsByRoom(ctx context.Context, db pgq.DBTX, roomID uuid.UUID, since pgtype.Date) ([]pgq.Booking, error)
	ListHoldingBookingsByProperty(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID, since, until pgtype.Date) ([]pgq.Booking, error)
	ListActiveStaysByRoom(ctx context.Context, db pgq.DBTX, roomID uuid.UUID) ([]pgq.Stay, error)
	ListStaysByProperty(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID, since, until pgtype.Date) ([]pgq.Stay, error)
	ListActiveMaintenanceByRoom(ctx context.Context, db pgq.DBTX, roomID uuid.UUID, since pgtype.Date) ([]pgq.MaintenanceSchedule, error)
	ListActiveMaintenanceByProperty(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID, since, until pgtype.Date) ([]pgq.MaintenanceSchedule, error)
}

// SnapshotFunc runs fn against a single read-only snapshot of the database.
type SnapshotFunc func(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error

// ScheduleReadStore assembles room schedules from several statements run in one snapshot,
// so a booking committed halfway through cannot appear in one list and be missing from another.
type ScheduleReadStore struct {
	queries  ScheduleReadQueries
	snapshot SnapshotFunc
}

func NewScheduleReadStore(queries ScheduleReadQueries, snapshot SnapshotFunc) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries:  queries,
		snapshot: snapshot,
	}
}

func (s *ScheduleReadStore) RoomSchedule(ctx context.Context, r *room.Room, from, _ calendar.Date) (availability.Schedule, error) {
	since := converter.DateToInfra(from)
	var (
		bookings    []pgq.Booking
		stays       []pgq.Stay
		maintenance []pgq.MaintenanceSchedule
	)
	err := s.snapshot(ctx, func(ctx context.Context, db pgq.DBTX) error {
		var err error
		if bookings, err = s.queries.ListHoldingBookingsByRoom(ctx, db, r.ID(), since); err != nil {
			return infra.WrapRepoErr("failed to list bookings of room", err)
		}
		if stays, err = s.queries.ListActiveStaysByRoom(ctx, db, r.ID()); err != nil {
			return infra.WrapRepoErr("failed to list stays of room", err)
		}
		if maintenance, err = s.queries.ListActiveMaintenanceByRoom(ctx, db, r.ID(), since); err != nil {
			return infra.WrapRepoErr("failed to list maintenance of room", err)
		}
		return nil
	})
	if err != nil {
		return availability.Schedule{}, err
	}

	sched := availability.Schedule{
		Room:        r,
		Bookings:    converter.BookingsFromInfra(bookings),
		Maintenance: converter.MaintenanceListFromInfra(maintenance),
	}
	if sched.Stays, err = converter.StaysFromInfra(stays); err != nil {
		return availability.Schedule{}, infra.WrapRepoErr("failed to decode stays", err, infra.KindDBFailure)
	}
	return sched, nil
}

// PropertySchedules returns one schedule per room of the property, ordered by room number.
// Stays are included whatever their status so past days keep their occupancy.
func (s *ScheduleReadStore) PropertySchedules(ctx context.Context, propertyID uuid.UUID, from, to calendar.Date) ([]availability.Schedule, error) {
	since, until := converter.DateToInfra(from), converter.DateToInfra(to)

	var (
		rooms       []pgq.Room
		bookings    []pgq.Booking
		stayRows    []pgq.Stay
		maintenance []pgq.MaintenanceSchedule
	)
	err := s.snapshot(ctx, func(ctx context.Context, db pgq.DBTX) error {
		var err error
		if rooms, err = s.queries.ListRoomsByProperty(ctx, db, propertyID); err != nil {
			return infra.WrapRepoErr("failed to list rooms", err)
		}
		if bookings, err = s.queries.ListHoldingBookingsByProperty(ctx, db, propertyID, since, until); err != nil {
			return infra.WrapRepoErr("failed to list bookings", err)
		}
		if stayRows, err = s.queries.ListStaysByProperty(ctx, db, propertyID, since, until); err != nil {
			return infra.WrapRepoErr("failed to list stays", err)
		}
		if maintenance, err = s.queries.ListActiveMaintenanceByProperty(ctx, db, propertyID, since, until); err != nil {
			return infra.WrapRepoErr("failed to list maintenance", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	stays, err := converter.StaysFromInfra(stayRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode stays", err, infra.KindDBFailure)
	}

	out := make([]availability.Schedule, 0, len(rooms))
	index := make(map[uuid.UUID]int, len(rooms))
	for i, r := range converter.RoomsFromInfra(rooms) {
		index[r.ID()] = i
		out = append(out, availability.Schedule{Room: r})
	}
	for _, b := range converter.BookingsFromInfra(bookings) {
		if i, ok := index[b.RoomID()]; ok {
			out[i].Bookings = append(out[i].Bookings, b)
		}
	}
	for _, st := range stays {
		if i, ok := index[st.RoomID()]; ok {
			out[i].Stays = append(out[i].Stays, st)
		}
	}
	for _, m := range converter.MaintenanceListFromInfra(maintenance) {
		if i, ok := index[m.RoomID()]; ok {
			out[i].Maintenance = append(out[i].Maintenance, m)
		}
	}
	return out, nil
}
