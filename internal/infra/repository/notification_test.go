//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository"
	repositorymock "room-stay-engine/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	payload := []byte(`{"booking_id":"b1"}`)

	t.Run("success: job is queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, arg pgq.CreateNotificationJobParams) error {
				assert.Equal(t, "email", arg.Kind)
				assert.Equal(t, "booking_created", arg.Topic)
				assert.JSONEq(t, string(payload), string(arg.Payload))
				assert.True(t, arg.RunAt.Time.Equal(runAt))
				return nil
			})

		require.NoError(t, repo.CreateJob(ctx, mockDB, "email", "booking_created", payload, runAt))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errDBConnection)

		err := repo.CreateJob(ctx, mockDB, "email", "booking_created", payload, runAt)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
