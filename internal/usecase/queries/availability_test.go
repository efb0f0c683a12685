//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"room-stay-engine/internal/domain/availability"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/tests/common/builder"
	queriesmock "room-stay-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_RoomAvailability(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	date := builder.Today.AddDays(1)

	t.Run("success: each room resolved for the day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schedules := queriesmock.NewMockScheduleReadStore(ctrl)
		q := queries.NewAvailabilityQueries(schedules)

		free := builder.NewRoomBuilder().WithNumber("101").BuildDomain()
		booked := builder.NewRoomBuilder().WithNumber("102").BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(booked.ID(), "102").WithGuestName("Ravi Menon").WithDates(0, 3).BuildDomain()
		occupied := builder.NewRoomBuilder().WithNumber("103").BuildDomain()
		s := builder.NewStayBuilder().WithRoom(occupied.ID(), "103").WithDates(0, 2).BuildDomain()

		schedules.EXPECT().PropertySchedules(ctx, propertyID, date, date.AddDays(1)).Return([]availability.Schedule{
			{Room: free},
			{Room: booked, Bookings: []*booking.Booking{b}},
			{Room: occupied, Stays: []*stay.Stay{s}},
		}, nil)

		views, err := q.RoomAvailability(ctx, propertyID, date)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "available", views[0].ScheduledStatus)
		assert.Equal(t, "booked", views[1].ScheduledStatus)
		assert.Equal(t, "Ravi Menon", views[1].GuestName)
		assert.Equal(t, b.ID(), *views[1].BookingID)
		assert.Equal(t, "occupied", views[2].ScheduledStatus)
		assert.Equal(t, s.ID(), *views[2].StayID)
	})

	t.Run("error: zero date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewAvailabilityQueries(queriesmock.NewMockScheduleReadStore(ctrl))

		_, err := q.RoomAvailability(ctx, propertyID, calendar.Date{})
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrValidation))
	})

	t.Run("error: read store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schedules := queriesmock.NewMockScheduleReadStore(ctrl)
		q := queries.NewAvailabilityQueries(schedules)

		schedules.EXPECT().PropertySchedules(ctx, propertyID, gomock.Any(), gomock.Any()).Return(nil, errDBConnection)

		_, err := q.RoomAvailability(ctx, propertyID, date)
		assert.ErrorIs(t, err, errDBConnection)
	})
}

func TestAvailabilityQueries_MonthSummary(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()

	t.Run("success: loads the whole month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schedules := queriesmock.NewMockScheduleReadStore(ctrl)
		q := queries.NewAvailabilityQueries(schedules)

		r := builder.NewRoomBuilder().BuildDomain()
		other := builder.NewRoomBuilder().WithNumber("102").WithStatus(room.StatusOutOfService).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), r.Number()).WithDates(0, 2).BuildDomain()

		schedules.EXPECT().PropertySchedules(ctx, propertyID, calendar.NewDate(2025, 3, 1), calendar.NewDate(2025, 4, 1)).
			Return([]availability.Schedule{{Room: r, Bookings: []*booking.Booking{b}}, {Room: other}}, nil)

		view, err := q.MonthSummary(ctx, propertyID, time.March, 2025)
		require.NoError(t, err)
		assert.Equal(t, 2025, view.Year)
		assert.Equal(t, 3, view.Month)
		assert.Equal(t, 2, view.TotalRooms)
		require.Len(t, view.Days, 31)

		tenth := view.Days[9]
		assert.Equal(t, builder.Today, tenth.Date)
		assert.Equal(t, 1, tenth.BookingCount)
		assert.InDelta(t, 0.5, tenth.OccupancyRate, 1e-9)
		assert.Equal(t, 1, tenth.AvailableRooms)
		assert.Zero(t, view.Days[11].BookingCount)
	})

	invalid := []struct {
		name  string
		month time.Month
		year  int
	}{
		{name: "month zero", month: 0, year: 2025},
		{name: "month thirteen", month: 13, year: 2025},
		{name: "year too early", month: time.January, year: 1999},
		{name: "year too late", month: time.January, year: 2101},
	}
	for _, tc := range invalid {
		t.Run("error: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queries.NewAvailabilityQueries(queriesmock.NewMockScheduleReadStore(ctrl))

			_, err := q.MonthSummary(ctx, propertyID, tc.month, tc.year)
			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidMonth))
			assert.True(t, errs.Is(err, queries.ErrValidation))
		})
	}
}
