//go:build unit

package conflict_test

import (
	"testing"
	"time"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(from, to int) calendar.DateRange {
	return calendar.DateRange{Start: builder.Today.AddDays(from), End: builder.Today.AddDays(to)}
}

func TestDetect(t *testing.T) {
	t.Run("room 101 scenario", func(t *testing.T) {
		a := builder.NewBookingBuilder().WithGuestName("Guest A").WithDates(0, 2).BuildDomain()
		in := conflict.Inputs{Bookings: []*booking.Booking{a}}

		found := conflict.Detect(span(1, 3), in)
		require.Len(t, found, 1)
		assert.Equal(t, conflict.SourceBooking, found[0].Source)
		assert.Equal(t, a.ID(), found[0].ID)
		assert.Equal(t, "Guest A", found[0].GuestName)

		assert.Empty(t, conflict.Detect(span(2, 4), in), "back-to-back must not conflict")
	})

	t.Run("ignores cancelled and converted bookings", func(t *testing.T) {
		cancelled := builder.NewBookingBuilder().WithDates(0, 3).WithStatus(booking.StatusCancelled).BuildDomain()
		converted := builder.NewBookingBuilder().WithDates(0, 3).ConvertedTo(uuid.New()).BuildDomain()

		found := conflict.Detect(span(1, 2), conflict.Inputs{Bookings: []*booking.Booking{cancelled, converted}})
		assert.Empty(t, found)
	})

	t.Run("early checkout frees the rest of the converted booking", func(t *testing.T) {
		stayID := uuid.New()
		converted := builder.NewBookingBuilder().WithDates(-1, 4).ConvertedTo(stayID).BuildDomain()
		left := builder.NewStayBuilder().WithDates(-1, 4).WithBooking(converted.ID()).CheckedOut().BuildDomain()

		found := conflict.Detect(span(1, 3), conflict.Inputs{
			Bookings: []*booking.Booking{converted},
			Stays:    []*stay.Stay{left},
		})
		assert.Empty(t, found)
	})

	t.Run("excluded booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDates(0, 3).BuildDomain()
		id := b.ID()

		found := conflict.Detect(span(0, 3), conflict.Inputs{Bookings: []*booking.Booking{b}, ExcludeBookingID: &id})
		assert.Empty(t, found)
	})

	t.Run("active stays conflict, closed stays do not", func(t *testing.T) {
		active := builder.NewStayBuilder().WithGuestName("In House").WithDates(0, 2).BuildDomain()
		closed := builder.NewStayBuilder().WithDates(0, 2).CheckedOut().BuildDomain()

		found := conflict.Detect(span(1, 2), conflict.Inputs{Stays: []*stay.Stay{active, closed}})
		require.Len(t, found, 1)
		assert.Equal(t, conflict.SourceStay, found[0].Source)
		assert.Equal(t, active.ID(), found[0].ID)
	})

	t.Run("maintenance unless overridden", func(t *testing.T) {
		m, err := room.NewMaintenanceSchedule(uuid.New(), span(3, 5), "repaint", uuid.New(), time.Now())
		require.NoError(t, err)
		in := conflict.Inputs{Maintenance: []*room.MaintenanceSchedule{m}}

		found := conflict.Detect(span(4, 6), in)
		require.Len(t, found, 1)
		assert.Equal(t, conflict.SourceMaintenance, found[0].Source)
		assert.Contains(t, found[0].Reason, "repaint")

		in.IgnoreMaintenance = true
		assert.Empty(t, conflict.Detect(span(4, 6), in))

		in.IgnoreMaintenance = false
		require.NoError(t, m.Clear())
		assert.Empty(t, conflict.Detect(span(4, 6), in))
	})

	t.Run("sorted by start day", func(t *testing.T) {
		later := builder.NewBookingBuilder().WithDates(5, 7).BuildDomain()
		earlier := builder.NewStayBuilder().WithDates(0, 2).BuildDomain()

		found := conflict.Detect(span(0, 10), conflict.Inputs{
			Bookings: []*booking.Booking{later},
			Stays:    []*stay.Stay{earlier},
		})
		require.Len(t, found, 2)
		assert.Equal(t, conflict.SourceStay, found[0].Source)
		assert.Equal(t, conflict.SourceBooking, found[1].Source)
	})
}
