//go:build unit

package booking_test

import (
	"testing"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildNew()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, 2, actual.Nights())
		assert.Equal(t, int64(4000), actual.TotalEstimate().Amount())
		assert.Equal(t, "Asha Rao", actual.Guest().Name())
		assert.Nil(t, actual.StayID())
		assert.Nil(t, actual.Override())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing guest name",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestName("") },
				errIs:  guest.ErrEmptyName,
			},
			{
				name:   "same-day check-out",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(2, 2) },
				errIs:  calendar.ErrInvalidRange,
			},
			{
				name:   "check-in yesterday",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(-1, 1) },
				errIs:  booking.ErrCheckInInPast,
			},
			{
				name:   "check-in today",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(0, 1) },
			},
			{
				name:   "last day of the window",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(120, 121) },
			},
			{
				name:   "beyond the window",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(121, 122) },
				errIs:  booking.ErrTooFarAhead,
			},
			{
				name:   "no guests",
				mutate: func(b *builder.BookingBuilder) { b.GuestCount = 0 },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "override without reason",
				mutate: func(b *builder.BookingBuilder) { b.WithOverride(uuid.New(), " ") },
				errIs:  booking.ErrOverrideReason,
			},
			{
				name:   "override with reason",
				mutate: func(b *builder.BookingBuilder) { b.WithOverride(uuid.New(), "VIP, plumber done early") },
			},
		})
	})

	t.Run("window uses default when unset", func(t *testing.T) {
		w := booking.NewWindow(builder.Today, 0)
		assert.Equal(t, booking.DefaultMaxAdvanceDays, w.MaxAdvanceDays)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("cancel is idempotent", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		changed, err := b.Cancel(builder.NewBookingBuilder().Now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())

		changed, err = b.Cancel(builder.NewBookingBuilder().Now)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("checked-in booking cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().ConvertedTo(uuid.New()).BuildDomain()
		_, err := b.Cancel(builder.NewBookingBuilder().Now)
		require.ErrorIs(t, err, booking.ErrNotConfirmed)
	})

	t.Run("mark checked in", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		stayID := uuid.New()

		require.NoError(t, b.MarkCheckedIn(stayID, builder.NewBookingBuilder().Now))
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
		assert.Equal(t, stayID, *b.StayID())
		assert.False(t, b.BlocksCalendar())

		require.ErrorIs(t, b.MarkCheckedIn(uuid.New(), builder.NewBookingBuilder().Now), booking.ErrNotConfirmed)
	})

	t.Run("cancelled booking cannot check in", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		require.ErrorIs(t, b.MarkCheckedIn(uuid.New(), builder.NewBookingBuilder().Now), booking.ErrNotConfirmed)
		assert.False(t, b.BlocksCalendar())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildNew()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
