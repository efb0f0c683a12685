//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository"
	"room-stay-engine/internal/pkg/pgconv"
	"room-stay-engine/tests/common/builder"
	repositorymock "room-stay-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

// =============================================================================
// Create Room Tests
// =============================================================================

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomWriteQueries, *room.Room, pgq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: room created",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, r *room.Room, tx pgq.DBTX) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ pgq.DBTX, arg pgq.CreateRoomParams) error {
						assert.Equal(t, r.ID(), arg.ID)
						assert.Equal(t, r.Number(), arg.Number)
						assert.Equal(t, "available", arg.Status)
						assert.Equal(t, int64(2000), arg.Tariff)
						return nil
					})
			},
		},
		{
			name: "error: duplicate room number",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, _ *room.Room, tx pgq.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockRoomWriteQueries, _ *room.Room, tx pgq.DBTX) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).Return(errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries, mockDB)

			r, err := builder.NewRoomBuilder().BuildNew()
			require.NoError(t, err)
			tc.setupMock(mockQueries, r, mockDB)

			actualError := repo.Create(ctx, mockDB, r)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Lock Room Tests
// =============================================================================

func TestRoomRepository_Lock(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	stayID := uuid.New()

	t.Run("success: row is converted to the domain room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRoomRepository(mockQueries, mockDB)

		now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		mockQueries.EXPECT().LockRoom(ctx, mockDB, roomID).Return(pgq.Room{
			ID:           roomID,
			PropertyID:   uuid.New(),
			Number:       "204",
			RoomType:     "suite",
			Floor:        "2",
			Capacity:     3,
			Tariff:       4500,
			Amenities:    []string{"wifi"},
			Status:       "occupied",
			ActiveStayID: pgconv.UUIDToPgtype(stayID),
			CreatedAt:    pgconv.TimeToPgtype(now),
			UpdatedAt:    pgconv.TimeToPgtype(now),
		}, nil)

		r, err := repo.Lock(ctx, mockDB, roomID)
		require.NoError(t, err)
		assert.Equal(t, "204", r.Number())
		assert.Equal(t, room.StatusOccupied, r.Status())
		assert.Equal(t, 3, r.Capacity())
		assert.Equal(t, int64(4500), r.Tariff().Amount())
		require.NotNil(t, r.ActiveStayID())
		assert.Equal(t, stayID, *r.ActiveStayID())
	})

	t.Run("error: room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRoomRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockRoom(ctx, mockDB, roomID).Return(pgq.Room{}, pgx.ErrNoRows)

		r, err := repo.Lock(ctx, mockDB, roomID)
		require.Error(t, err)
		assert.Nil(t, r)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRoomRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockRoom(ctx, mockDB, roomID).Return(pgq.Room{}, errDBConnection)

		_, err := repo.Lock(ctx, mockDB, roomID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// SaveStatus Tests
// =============================================================================

func TestRoomRepository_SaveStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: status saved", rows: 1},
		{name: "error: room not found", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries, mockDB)

			stayID := uuid.New()
			r := builder.NewRoomBuilder().OccupiedBy(stayID).BuildDomain()
			mockQueries.EXPECT().UpdateRoomStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgq.DBTX, arg pgq.UpdateRoomStatusParams) (int64, error) {
					assert.Equal(t, r.ID(), arg.ID)
					assert.Equal(t, "occupied", arg.Status)
					assert.Equal(t, pgconv.UUIDToPgtype(stayID), arg.ActiveStayID)
					return tc.rows, tc.err
				})

			err := repo.SaveStatus(ctx, mockDB, r)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Mock DBTX for testing
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
