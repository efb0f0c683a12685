package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/availability"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// ScheduleReadStore loads what is scheduled on rooms between from and to.
// Results may include records outside the interval; callers decide overlap themselves.
type ScheduleReadStore interface {
	RoomSchedule(ctx context.Context, r *room.Room, from, to calendar.Date) (availability.Schedule, error)
	PropertySchedules(ctx context.Context, propertyID uuid.UUID, from, to calendar.Date) ([]availability.Schedule, error)
}

// ValidateInput is a booking request checked without writing anything.
type ValidateInput struct {
	Room                room.Ref
	CheckIn             calendar.Date
	CheckOut            calendar.Date
	ExcludeBookingID    *uuid.UUID
	OverrideUnavailable bool
}

type BookingQueries interface {
	GetByID(ctx context.Context, propertyID, id uuid.UUID) (*BookingView, error)
	// Validate runs the conflict check a booking would face, without holding locks.
	Validate(ctx context.Context, a actor.Actor, in ValidateInput) (*ValidationView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	rooms     RoomReadStore
	schedules ScheduleReadStore
	policy    *shared.Policy
}

func NewBookingQueries(bookings BookingReadStore, rooms RoomReadStore, schedules ScheduleReadStore, policy *shared.Policy) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		rooms:     rooms,
		schedules: schedules,
		policy:    policy,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, propertyID, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.PropertyID() != propertyID {
		return nil, ErrBookingNotFound
	}
	return BookingViewFrom(b), nil
}

func (q *bookingQueriesImpl) Validate(ctx context.Context, a actor.Actor, in ValidateInput) (*ValidationView, error) {
	period, err := q.policy.Period(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := q.policy.CheckWindow(period); err != nil {
		return nil, err
	}

	r, err := findRoom(ctx, q.rooms, a.PropertyID, in.Room)
	if err != nil {
		return nil, err
	}

	sched, err := q.schedules.RoomSchedule(ctx, r, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	// only an admin's override is honoured, the same as on the write path
	override := in.OverrideUnavailable && a.CanOverrideUnavailable()
	conflicts := conflict.Detect(period, conflict.Inputs{
		Bookings:          sched.Bookings,
		Stays:             sched.Stays,
		Maintenance:       sched.Maintenance,
		ExcludeBookingID:  in.ExcludeBookingID,
		IgnoreMaintenance: override,
	})
	blocked := r.Status().IsBlocked() && !override

	return &ValidationView{
		Available:     len(conflicts) == 0 && !blocked,
		RoomID:        r.ID(),
		RoomNumber:    r.Number(),
		RoomStatus:    r.Status().String(),
		RoomBlocked:   blocked,
		Nights:        period.Nights(),
		TotalEstimate: r.Tariff().Times(period.Nights()).Amount(),
		Conflicts:     ConflictViewsFrom(conflicts),
	}, nil
}
