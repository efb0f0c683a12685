//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/readstore"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/tests/common/builder"
	readstoremock "room-stay-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetBooking(ctx, mockDB, id).Return(pgq.Booking{
			ID:        id,
			GuestName: "Asha Rao",
			CheckIn:   converter.DateToInfra(builder.Today),
			CheckOut:  converter.DateToInfra(builder.Today.AddDays(3)),
			Tariff:    1500,
			Status:    "cancelled",
		}, nil)

		b, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, 3, b.Nights())
		assert.False(t, b.BlocksCalendar())
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetBooking(ctx, mockDB, id).Return(pgq.Booking{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
