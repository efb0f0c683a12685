//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Room Tests
// =============================================================================

func TestRoomUseCase_Create(t *testing.T) {
	ctx := context.Background()
	in := commands.CreateRoomInput{Number: "305", Type: "suite", Floor: "3", Capacity: 4, Tariff: 6500, Amenities: []string{"wifi"}}

	t.Run("success: room starts available in the actor's property", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)

		f.rooms.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, r *room.Room) error {
				assert.Equal(t, f.propertyID, r.PropertyID())
				assert.Equal(t, room.StatusAvailable, r.Status())
				return nil
			})

		view, err := uc.Create(ctx, f.actor(actor.RoleAdmin), in)
		require.NoError(t, err)
		assert.Equal(t, "305", view.Number)
		assert.Equal(t, "available", view.Status)
		assert.Equal(t, int64(6500), view.Tariff)
	})

	t.Run("error: duplicate room number", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)

		f.rooms.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create room", nil, infra.KindDuplicateKey))

		_, err := uc.Create(ctx, f.actor(actor.RoleAdmin), in)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDuplicateRoomNumber))
	})

	t.Run("error: invalid capacity", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)

		bad := in
		bad.Capacity = 0
		_, err := uc.Create(ctx, f.actor(actor.RoleAdmin), bad)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})
}

// =============================================================================
// Status Transition Tests
// =============================================================================

type roomTransition func(commands.RoomCommands, context.Context, actor.Actor, room.Ref) (*queries.RoomView, error)

func TestRoomUseCase_Transitions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		from      room.Status
		apply     roomTransition
		expectTo  room.Status
		expectErr error
	}{
		{name: "mark ready after cleaning", from: room.StatusCleaning, apply: commands.RoomCommands.MarkReady, expectTo: room.StatusAvailable},
		{name: "mark ready after maintenance", from: room.StatusMaintenance, apply: commands.RoomCommands.MarkReady, expectTo: room.StatusAvailable},
		{name: "mark ready on an available room", from: room.StatusAvailable, apply: commands.RoomCommands.MarkReady, expectErr: commands.ErrInvalidRoomTransition},
		{name: "take out of service", from: room.StatusAvailable, apply: commands.RoomCommands.TakeOutOfService, expectTo: room.StatusOutOfService},
		{name: "take out of service while occupied", from: room.StatusOccupied, apply: commands.RoomCommands.TakeOutOfService, expectErr: commands.ErrInvalidRoomTransition},
		{name: "return to service", from: room.StatusOutOfService, apply: commands.RoomCommands.ReturnToService, expectTo: room.StatusAvailable},
		{name: "return to service when not out", from: room.StatusCleaning, apply: commands.RoomCommands.ReturnToService, expectErr: commands.ErrInvalidRoomTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			uc := commands.NewRoomUseCase(f.uow, f.policy)
			r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(tc.from).BuildDomain()

			f.reads.EXPECT().RoomByRef(ctx, f.propertyID, room.ByNumber("101")).Return(r, nil)
			f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
			if tc.expectErr == nil {
				f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).Return(nil)
			}

			view, err := tc.apply(uc, ctx, f.actor(actor.RoleOperator), room.ByNumber("101"))
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got (%v)", tc.expectErr, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectTo.String(), view.Status)
		})
	}

	t.Run("error: room in another property", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		foreign := builder.NewRoomBuilder().WithPropertyID(uuid.New()).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(foreign, nil)

		_, err := uc.MarkReady(ctx, f.actor(actor.RoleOperator), room.ByID(foreign.ID()))
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})

	t.Run("error: unknown room", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := uc.TakeOutOfService(ctx, f.actor(actor.RoleOperator), room.ByNumber("999"))
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})
}

// =============================================================================
// ScheduleMaintenance Tests
// =============================================================================

func TestRoomUseCase_ScheduleMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("success: window covering today moves the room to maintenance", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()
		admin := f.actor(actor.RoleAdmin)

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())
		f.maintenance.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, m *room.MaintenanceSchedule) error {
				assert.Equal(t, r.ID(), m.RoomID())
				assert.Equal(t, admin.ID, m.CreatedBy())
				assert.True(t, m.IsActive())
				return nil
			})
		f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, saved *room.Room) error {
				assert.Equal(t, room.StatusMaintenance, saved.Status())
				return nil
			})

		view, err := uc.ScheduleMaintenance(ctx, admin, commands.ScheduleMaintenanceInput{
			Room:      room.ByNumber("101"),
			StartDate: builder.Today,
			EndDate:   builder.Today.AddDays(2),
			Reason:    "plumbing",
		})
		require.NoError(t, err)
		assert.Equal(t, "plumbing", view.Reason)
		assert.True(t, view.Active)
	})

	t.Run("success: future window leaves the room status alone", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())
		f.maintenance.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.ScheduleMaintenance(ctx, f.actor(actor.RoleAdmin), commands.ScheduleMaintenanceInput{
			Room:      room.ByNumber("101"),
			StartDate: builder.Today.AddDays(5),
			EndDate:   builder.Today.AddDays(7),
			Reason:    "painting",
		})
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("error: window overlaps a booking", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), r.Number()).WithGuestName("Ravi Menon").WithDates(3, 5).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), gomock.Any()).Return([]*booking.Booking{b}, nil)
		f.stays.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID()).Return(nil, nil)
		f.maintenance.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID(), gomock.Any()).Return(nil, nil)

		_, err := uc.ScheduleMaintenance(ctx, f.actor(actor.RoleAdmin), commands.ScheduleMaintenanceInput{
			Room:      room.ByNumber("101"),
			StartDate: builder.Today.AddDays(4),
			EndDate:   builder.Today.AddDays(6),
			Reason:    "painting",
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrBookingConflict))
		var ce *commands.ConflictError
		require.True(t, errs.As(err, &ce))
		require.Len(t, ce.Conflicts, 1)
		assert.Equal(t, b.ID(), ce.Conflicts[0].ID)
	})

	testCases := []struct {
		name  string
		start calendar.Date
		end   calendar.Date
	}{
		{name: "window already over", start: builder.Today.AddDays(-3), end: builder.Today},
		{name: "end before start", start: builder.Today.AddDays(2), end: builder.Today.AddDays(1)},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			uc := commands.NewRoomUseCase(f.uow, f.policy)

			_, err := uc.ScheduleMaintenance(ctx, f.actor(actor.RoleAdmin), commands.ScheduleMaintenanceInput{
				Room: room.ByNumber("101"), StartDate: tc.start, EndDate: tc.end, Reason: "leak",
			})
			require.Error(t, err)
			assert.True(t, errs.Is(err, commands.ErrValidation))
		})
	}

	t.Run("error: blank reason", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())

		_, err := uc.ScheduleMaintenance(ctx, f.actor(actor.RoleAdmin), commands.ScheduleMaintenanceInput{
			Room: room.ByNumber("101"), StartDate: builder.Today, EndDate: builder.Today.AddDays(1), Reason: "  ",
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})
}

// =============================================================================
// ClearMaintenance Tests
// =============================================================================

func TestRoomUseCase_ClearMaintenance(t *testing.T) {
	ctx := context.Background()

	window := func(t *testing.T, roomID uuid.UUID, start, end int) *room.MaintenanceSchedule {
		t.Helper()
		period := calendar.DateRange{Start: builder.Today.AddDays(start), End: builder.Today.AddDays(end)}
		m, err := room.NewMaintenanceSchedule(roomID, period, "leak", uuid.New(), time.Now())
		require.NoError(t, err)
		return m
	}

	t.Run("success: last window covering today releases the room", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusMaintenance).BuildDomain()
		m := window(t, r.ID(), 0, 2)

		f.maintenance.EXPECT().Get(ctx, gomock.Any(), m.ID()).Return(m, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.maintenance.EXPECT().Deactivate(ctx, gomock.Any(), m.ID()).Return(nil)
		f.maintenance.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*room.MaintenanceSchedule{m}, nil)
		f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).Return(nil)

		view, err := uc.ClearMaintenance(ctx, f.actor(actor.RoleAdmin), m.ID())
		require.NoError(t, err)
		assert.False(t, view.Active)
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("success: another window still covers today", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusMaintenance).BuildDomain()
		m := window(t, r.ID(), 0, 2)
		other := window(t, r.ID(), -1, 3)

		f.maintenance.EXPECT().Get(ctx, gomock.Any(), m.ID()).Return(m, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.maintenance.EXPECT().Deactivate(ctx, gomock.Any(), m.ID()).Return(nil)
		f.maintenance.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*room.MaintenanceSchedule{m, other}, nil)

		_, err := uc.ClearMaintenance(ctx, f.actor(actor.RoleAdmin), m.ID())
		require.NoError(t, err)
		assert.Equal(t, room.StatusMaintenance, r.Status())
	})

	t.Run("error: already cleared", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()
		m := window(t, r.ID(), 1, 2)
		require.NoError(t, m.Clear())

		f.maintenance.EXPECT().Get(ctx, gomock.Any(), m.ID()).Return(m, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)

		_, err := uc.ClearMaintenance(ctx, f.actor(actor.RoleAdmin), m.ID())
		assert.True(t, errs.Is(err, commands.ErrMaintenanceInactive))
	})

	t.Run("error: unknown schedule", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		id := uuid.New()

		f.maintenance.EXPECT().Get(ctx, gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("maintenance schedule not found", nil, infra.KindNotFound))

		_, err := uc.ClearMaintenance(ctx, f.actor(actor.RoleAdmin), id)
		assert.True(t, errs.Is(err, commands.ErrMaintenanceNotFound))
	})

	t.Run("error: schedule belongs to another property", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewRoomUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(uuid.New()).WithStatus(room.StatusMaintenance).BuildDomain()
		m := window(t, r.ID(), 0, 1)

		f.maintenance.EXPECT().Get(ctx, gomock.Any(), m.ID()).Return(m, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)

		_, err := uc.ClearMaintenance(ctx, f.actor(actor.RoleAdmin), m.ID())
		assert.True(t, errs.Is(err, commands.ErrMaintenanceNotFound))
	})
}
