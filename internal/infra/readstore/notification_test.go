//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/readstore"
	readstoremock "room-stay-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationReadStore_ListByTopic(t *testing.T) {
	ctx := context.Background()

	t.Run("success: payload is decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewNotificationReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListNotificationJobsByTopic(ctx, mockDB, "guest_checked_out").Return([]pgq.NotificationJob{
			{ID: uuid.New(), Kind: "email", Topic: "guest_checked_out", Payload: []byte(`{"room_number":"101","total":4000}`), Status: "pending"},
		}, nil)

		jobs, err := store.ListByTopic(ctx, "guest_checked_out")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "101", jobs[0].Payload["room_number"])
		assert.EqualValues(t, 4000, jobs[0].Payload["total"])
	})

	t.Run("error: payload is not JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewNotificationReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListNotificationJobsByTopic(ctx, mockDB, "x").Return([]pgq.NotificationJob{{Payload: []byte(`oops`)}}, nil)

		_, err := store.ListByTopic(ctx, "x")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
