//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/pkg/clock"
	"room-stay-engine/internal/pkg/config"
	"room-stay-engine/internal/usecase/shared"
	sharedmock "room-stay-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixtureNow is 10:00 at the property (Asia/Tokyo), on builder.Today.
var fixtureNow = time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)

// fixture wires a unit of work whose Within runs the callback once against mocked repositories.
type fixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	rooms         *sharedmock.MockRoomRepository
	bookings      *sharedmock.MockBookingRepository
	stays         *sharedmock.MockStayRepository
	maintenance   *sharedmock.MockMaintenanceRepository
	orders        *sharedmock.MockOrderRepository
	nightClaims   *sharedmock.MockNightClaimRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
	policy        *shared.Policy
	propertyID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		rooms:         sharedmock.NewMockRoomRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		stays:         sharedmock.NewMockStayRepository(ctrl),
		maintenance:   sharedmock.NewMockMaintenanceRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		nightClaims:   sharedmock.NewMockNightClaimRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixtureNow),
		propertyID:    uuid.New(),
	}

	policy, err := shared.NewPolicy(config.NewTestConfig().Stay, f.clock)
	require.NoError(t, err)
	f.policy = policy

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Stays().Return(f.stays).AnyTimes()
	f.tx.EXPECT().Maintenance().Return(f.maintenance).AnyTimes()
	f.tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	f.tx.EXPECT().NightClaims().Return(f.nightClaims).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	return f
}

func (f *fixture) actor(role actor.Role) actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: role, PropertyID: f.propertyID}
}

// emptySchedule expects the three schedule reads made under the room lock and returns nothing.
func (f *fixture) emptySchedule(roomID uuid.UUID) {
	f.bookings.EXPECT().ListHoldingByRoom(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(nil, nil)
	f.stays.EXPECT().ListActiveByRoom(gomock.Any(), gomock.Any(), roomID).Return(nil, nil)
	f.maintenance.EXPECT().ListActiveByRoom(gomock.Any(), gomock.Any(), roomID, gomock.Any()).Return(nil, nil)
}

func (f *fixture) expectNotification(topic string) {
	f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", topic, gomock.Any(), fixtureNow).Return(nil)
}
