package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"time"

	"room-stay-engine/internal/domain/availability"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidMonth = errs.Mark(errs.New("month must be 1-12 and year 2000-2100"), ErrValidation)

type AvailabilityQueries interface {
	RoomAvailability(ctx context.Context, propertyID uuid.UUID, date calendar.Date) ([]*RoomAvailabilityView, error)
	MonthSummary(ctx context.Context, propertyID uuid.UUID, month time.Month, year int) (*MonthSummaryView, error)
}

type availabilityQueriesImpl struct {
	schedules ScheduleReadStore
}

func NewAvailabilityQueries(schedules ScheduleReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{schedules: schedules}
}

func (q *availabilityQueriesImpl) RoomAvailability(ctx context.Context, propertyID uuid.UUID, date calendar.Date) ([]*RoomAvailabilityView, error) {
	if date.IsZero() {
		return nil, errs.Mark(calendar.ErrInvalidDate, ErrValidation)
	}
	schedules, err := q.schedules.PropertySchedules(ctx, propertyID, date, date.AddDays(1))
	if err != nil {
		return nil, err
	}
	out := make([]*RoomAvailabilityView, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, RoomAvailabilityViewFrom(availability.OnDate(s, date)))
	}
	return out, nil
}

func (q *availabilityQueriesImpl) MonthSummary(ctx context.Context, propertyID uuid.UUID, month time.Month, year int) (*MonthSummaryView, error) {
	if month < time.January || month > time.December || year < 2000 || year > 2100 {
		return nil, ErrInvalidMonth
	}
	first := calendar.NewDate(year, month, 1)
	next := first.AddDays(calendar.DaysIn(year, month))

	schedules, err := q.schedules.PropertySchedules(ctx, propertyID, first, next)
	if err != nil {
		return nil, err
	}

	days := availability.MonthSummary(schedules, year, month)
	view := &MonthSummaryView{
		Year:       year,
		Month:      int(month),
		TotalRooms: len(schedules),
		Days:       make([]DaySummaryView, 0, len(days)),
	}
	for _, d := range days {
		view.Days = append(view.Days, DaySummaryView{
			Date:           d.Date,
			BookingCount:   d.BookingCount,
			OccupancyRate:  d.OccupancyRate,
			AvailableRooms: d.AvailableRooms,
		})
	}
	return view, nil
}
