//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/shared"
	"room-stay-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createInput(ref room.Ref, checkIn, checkOut int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Room:       ref,
		GuestName:  "Asha Rao",
		GuestEmail: "asha@example.com",
		CheckIn:    builder.Today.AddDays(checkIn),
		CheckOut:   builder.Today.AddDays(checkOut),
		GuestCount: 2,
	}
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: arrival today reserves the room and queues a notification", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		a := f.actor(actor.RoleOperator)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, room.ByNumber("101")).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())

		var created *booking.Booking
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, b *booking.Booking) error {
				created = b
				return nil
			})
		f.nightClaims.EXPECT().Claim(ctx, gomock.Any(), r.ID(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, _ uuid.UUID, nights []calendar.Date, owner shared.ClaimOwner) error {
				assert.Equal(t, []calendar.Date{builder.Today, builder.Today.AddDays(1)}, nights)
				assert.Equal(t, shared.ClaimKindBooking, owner.Kind)
				assert.Equal(t, created.ID(), owner.ID)
				return nil
			})
		f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, saved *room.Room) error {
				assert.Equal(t, room.StatusReserved, saved.Status())
				return nil
			})
		f.notifications.EXPECT().CreateJob(ctx, gomock.Any(), "email", shared.TopicBookingCreated, gomock.Any(), fixtureNow).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, _, _ string, payload []byte, _ time.Time) error {
				var body map[string]any
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, "101", body["room_number"])
				assert.Equal(t, "2025-03-10", body["check_in"])
				return nil
			})

		res, err := uc.Create(ctx, a, createInput(room.ByNumber("101"), 0, 2), nil)
		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
		assert.Equal(t, created.ID(), res.Booking.ID)
		assert.Equal(t, 2, res.Booking.Nights)
		assert.Equal(t, int64(4000), res.Booking.TotalEstimate)
		assert.Equal(t, "confirmed", res.Booking.Status)
	})

	t.Run("success: future arrival leaves the room status alone", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.nightClaims.EXPECT().Claim(ctx, gomock.Any(), r.ID(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectNotification(shared.TopicBookingCreated)

		res, err := uc.Create(ctx, f.actor(actor.RoleOperator), createInput(room.ByID(r.ID()), 5, 7), nil)
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Equal(t, builder.Today.AddDays(5), res.Booking.CheckIn)
	})

	t.Run("error: overlapping booking is reported as a conflict", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()
		existing := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithGuestName("Ravi Kumar").WithDates(1, 3).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*booking.Booking{existing}, nil)
		f.stays.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID()).Return(nil, nil)
		f.maintenance.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return(nil, nil)

		_, err := uc.Create(ctx, f.actor(actor.RoleOperator), createInput(room.ByNumber("101"), 0, 2), nil)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrBookingConflict))

		var conflictErr *commands.ConflictError
		require.True(t, errs.As(err, &conflictErr))
		require.Len(t, conflictErr.Conflicts, 1)
		assert.Equal(t, existing.ID(), conflictErr.Conflicts[0].ID)
		assert.Equal(t, "Ravi Kumar", conflictErr.Conflicts[0].GuestName)
	})

	t.Run("error: night claim collision is a conflict", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		holder := uuid.New()
		f.nightClaims.EXPECT().Claim(ctx, gomock.Any(), r.ID(), gomock.Any(), gomock.Any()).
			Return(&shared.ClaimCollisionError{Taken: []shared.NightClaim{
				{Night: builder.Today.AddDays(3), Owner: shared.StayClaim(holder)},
				{Night: builder.Today.AddDays(4), Owner: shared.StayClaim(holder)},
				{Night: builder.Today.AddDays(6), Owner: shared.StayClaim(holder)},
			}})

		_, err := uc.Create(ctx, f.actor(actor.RoleOperator), createInput(room.ByNumber("101"), 3, 7), nil)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrBookingConflict))

		var conflictErr *commands.ConflictError
		require.True(t, errs.As(err, &conflictErr))
		require.Len(t, conflictErr.Conflicts, 2)
		assert.Equal(t, "stay", conflictErr.Conflicts[0].Source)
		assert.Equal(t, holder, conflictErr.Conflicts[0].ID)
		assert.Equal(t, builder.Today.AddDays(3), conflictErr.Conflicts[0].CheckIn)
		assert.Equal(t, builder.Today.AddDays(5), conflictErr.Conflicts[0].CheckOut)
		assert.Equal(t, builder.Today.AddDays(6), conflictErr.Conflicts[1].CheckIn)
		assert.Equal(t, builder.Today.AddDays(7), conflictErr.Conflicts[1].CheckOut)
		assert.Contains(t, conflictErr.Conflicts[0].Reason, holder.String())
	})

	t.Run("error: blocked room without override", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusOutOfService).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)

		_, err := uc.Create(ctx, f.actor(actor.RoleOperator), createInput(room.ByNumber("101"), 1, 2), nil)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrRoomUnavailable))
	})

	t.Run("success: admin override books through a blocked room", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusMaintenance).BuildDomain()
		admin := f.actor(actor.RoleAdmin)

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.nightClaims.EXPECT().Claim(ctx, gomock.Any(), r.ID(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectNotification(shared.TopicBookingCreated)

		in := createInput(room.ByNumber("101"), 1, 2)
		in.OverrideUnavailable = true
		in.OverrideReason = "VIP guest"
		res, err := uc.Create(ctx, admin, in, nil)
		require.NoError(t, err)
		require.NotNil(t, res.Booking.OverrideBy)
		assert.Equal(t, admin.ID, *res.Booking.OverrideBy)
		assert.Equal(t, "VIP guest", res.Booking.OverrideReason)
	})

	t.Run("error: rejected before any transaction", func(t *testing.T) {
		testCases := []struct {
			name   string
			role   actor.Role
			mutate func(*commands.CreateBookingInput)
			expect error
		}{
			{
				name:   "override requested by an operator",
				role:   actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) { in.OverrideUnavailable, in.OverrideReason = true, "please" },
				expect: commands.ErrOverrideNotPermitted,
			},
			{
				name:   "override without a reason",
				role:   actor.RoleAdmin,
				mutate: func(in *commands.CreateBookingInput) { in.OverrideUnavailable = true },
				expect: commands.ErrOverrideNotPermitted,
			},
			{
				name:   "check-in in the past",
				role:   actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) { in.CheckIn = builder.Today.AddDays(-1) },
				expect: commands.ErrValidation,
			},
			{
				name: "check-in beyond the advance window",
				role: actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) {
					in.CheckIn, in.CheckOut = builder.Today.AddDays(121), builder.Today.AddDays(122)
				},
				expect: commands.ErrBookingTooFarAhead,
			},
			{
				name:   "check-out not after check-in",
				role:   actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) { in.CheckOut = in.CheckIn },
				expect: commands.ErrValidation,
			},
			{
				name:   "empty guest name",
				role:   actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) { in.GuestName = "   " },
				expect: commands.ErrValidation,
			},
			{
				name:   "zero guests",
				role:   actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) { in.GuestCount = 0 },
				expect: commands.ErrValidation,
			},
			{
				name:   "negative guests",
				role:   actor.RoleOperator,
				mutate: func(in *commands.CreateBookingInput) { in.GuestCount = -2 },
				expect: commands.ErrValidation,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				uc := commands.NewBookingUseCase(f.uow, f.policy)

				in := createInput(room.ByNumber("101"), 1, 2)
				tc.mutate(&in)
				_, err := uc.Create(ctx, f.actor(tc.role), in, nil)
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expect), "expected [%v] but got (%v)", tc.expect, err)
			})
		}
	})

	t.Run("error: room of another property is not found", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		foreign := builder.NewRoomBuilder().BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(foreign, nil)

		_, err := uc.Create(ctx, f.actor(actor.RoleOperator), createInput(room.ByID(foreign.ID()), 1, 2), nil)
		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})
}

// =============================================================================
// Idempotent Create Tests
// =============================================================================

func TestBookingUseCase_CreateIdempotent(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("success: completed key replays the stored booking", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		a := f.actor(actor.RoleOperator)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()
		stored := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()
		resultID := stored.ID()

		var hash string
		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.idempotency.EXPECT().TryInsert(ctx, gomock.Any(), key, a.ID, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, _, _ uuid.UUID, _, h string, _ time.Time) (bool, error) {
				hash = h
				return false, nil
			})
		f.reads.EXPECT().IdempotencyByKey(ctx, key, a.ID).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:         key,
					UserID:      a.ID,
					Status:      shared.IdempotencyCompleted,
					RequestHash: hash,
					ResultID:    &resultID,
					ExpiresAt:   fixtureNow.Add(time.Hour),
				}, nil
			})
		f.reads.EXPECT().BookingByID(ctx, resultID).Return(stored, nil)

		res, err := uc.Create(ctx, a, createInput(room.ByNumber("101"), 1, 2), &key)
		require.NoError(t, err)
		assert.True(t, res.IsReplayed)
		assert.Equal(t, resultID, res.Booking.ID)
	})

	t.Run("error: key state decides the outcome", func(t *testing.T) {
		testCases := []struct {
			name      string
			record    func(hash string) *shared.IdempotencyRecord
			expectErr error
		}{
			{
				name: "same key with a different body",
				record: func(string) *shared.IdempotencyRecord {
					return &shared.IdempotencyRecord{Status: shared.IdempotencyCompleted, RequestHash: "other", ExpiresAt: fixtureNow.Add(time.Hour)}
				},
				expectErr: commands.ErrIdempotencyKeyReused,
			},
			{
				name: "first request still processing",
				record: func(hash string) *shared.IdempotencyRecord {
					return &shared.IdempotencyRecord{Status: shared.IdempotencyProcessing, RequestHash: hash, ExpiresAt: fixtureNow.Add(time.Hour)}
				},
				expectErr: commands.ErrIdempotencyInProgress,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				uc := commands.NewBookingUseCase(f.uow, f.policy)
				a := f.actor(actor.RoleOperator)
				r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

				var hash string
				f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
				f.idempotency.EXPECT().TryInsert(ctx, gomock.Any(), key, a.ID, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ pgq.DBTX, _, _ uuid.UUID, _, h string, _ time.Time) (bool, error) {
						hash = h
						return false, nil
					})
				f.reads.EXPECT().IdempotencyByKey(ctx, key, a.ID).DoAndReturn(
					func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
						return tc.record(hash), nil
					})

				_, err := uc.Create(ctx, a, createInput(room.ByNumber("101"), 1, 2), &key)
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got (%v)", tc.expectErr, err)
			})
		}
	})

	t.Run("success: expired key is taken over and the booking proceeds", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		a := f.actor(actor.RoleOperator)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).BuildDomain()

		f.reads.EXPECT().RoomByRef(ctx, f.propertyID, gomock.Any()).Return(r, nil)
		f.idempotency.EXPECT().TryInsert(ctx, gomock.Any(), key, a.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().IdempotencyByKey(ctx, key, a.ID).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyCompleted,
			RequestHash: "stale",
			ExpiresAt:   fixtureNow.Add(-time.Minute),
		}, nil)
		f.idempotency.EXPECT().ClaimExpired(ctx, gomock.Any(), key, a.ID, gomock.Any(), fixtureNow.Add(24*time.Hour), fixtureNow).Return(true, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.nightClaims.EXPECT().Claim(ctx, gomock.Any(), r.ID(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectNotification(shared.TopicBookingCreated)
		f.idempotency.EXPECT().MarkCompleted(ctx, gomock.Any(), key, a.ID, gomock.Any()).Return(nil)

		res, err := uc.Create(ctx, a, createInput(room.ByNumber("101"), 1, 2), &key)
		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
	})
}

// =============================================================================
// Cancel Booking Tests
// =============================================================================

func TestBookingUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: today's arrival releases the reserved room", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusReserved).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 2).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().SaveStatus(ctx, gomock.Any(), b).Return(nil)
		f.nightClaims.EXPECT().Release(ctx, gomock.Any(), shared.BookingClaim(b.ID())).Return(nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*booking.Booking{b}, nil)
		f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).Return(nil)
		f.expectNotification(shared.TopicBookingCancelled)

		view, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("success: room stays reserved for another arrival today", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusReserved).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 1).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()
		other := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 1).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().SaveStatus(ctx, gomock.Any(), b).Return(nil)
		f.nightClaims.EXPECT().Release(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*booking.Booking{b, other}, nil)
		f.expectNotification(shared.TopicBookingCancelled)

		_, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		require.NoError(t, err)
		assert.Equal(t, room.StatusReserved, r.Status())
	})

	t.Run("success: no-show cancelled the next day releases the reserved room", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusReserved).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 2).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()
		f.clock.Add(24 * time.Hour)
		nextDay := builder.Today.AddDays(1)

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().SaveStatus(ctx, gomock.Any(), b).Return(nil)
		f.nightClaims.EXPECT().Release(ctx, gomock.Any(), shared.BookingClaim(b.ID())).Return(nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), nextDay).Return([]*booking.Booking{b}, nil)
		f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).Return(nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", shared.TopicBookingCancelled, gomock.Any(), gomock.Any()).Return(nil)

		view, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("success: room stays reserved while another booking covers today", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusReserved).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 1).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()
		// started yesterday, still confirmed
		other := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(-1, 2).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().SaveStatus(ctx, gomock.Any(), b).Return(nil)
		f.nightClaims.EXPECT().Release(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*booking.Booking{b, other}, nil)
		f.expectNotification(shared.TopicBookingCancelled)

		_, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		require.NoError(t, err)
		assert.Equal(t, room.StatusReserved, r.Status())
	})

	t.Run("success: future booking leaves the room untouched", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		b := builder.NewBookingBuilder().WithDates(3, 5).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.bookings.EXPECT().SaveStatus(ctx, gomock.Any(), b).Return(nil)
		f.nightClaims.EXPECT().Release(ctx, gomock.Any(), shared.BookingClaim(b.ID())).Return(nil)
		f.expectNotification(shared.TopicBookingCancelled)

		_, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		require.NoError(t, err)
	})

	t.Run("success: cancelling twice changes nothing", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)

		view, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
	})

	t.Run("error: checked-in booking", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		b := builder.NewBookingBuilder().ConvertedTo(uuid.New()).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)

		_, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), b.ID())
		assert.True(t, errs.Is(err, commands.ErrBookingNotConfirmed))
	})

	t.Run("error: unknown or foreign booking", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		missing, foreign := uuid.New(), builder.NewBookingBuilder().BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), missing).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
		f.bookings.EXPECT().Lock(ctx, gomock.Any(), foreign.ID()).Return(foreign, nil)

		_, err := uc.Cancel(ctx, f.actor(actor.RoleOperator), missing)
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
		_, err = uc.Cancel(ctx, f.actor(actor.RoleOperator), foreign.ID())
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})
}

// =============================================================================
// Convert To Stay Tests
// =============================================================================

func TestBookingUseCase_ConvertToStay(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booking becomes a stay and the room is occupied", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusReserved).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 2).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.bookings.EXPECT().ListHoldingByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return([]*booking.Booking{b}, nil)
		f.stays.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID()).Return(nil, nil)
		f.maintenance.EXPECT().ListActiveByRoom(ctx, gomock.Any(), r.ID(), builder.Today).Return(nil, nil)

		var created *stay.Stay
		f.stays.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgq.DBTX, s *stay.Stay) error {
				created = s
				return nil
			})
		f.bookings.EXPECT().SaveStatus(ctx, gomock.Any(), b).Return(nil)
		f.nightClaims.EXPECT().Transfer(ctx, gomock.Any(), shared.BookingClaim(b.ID()), gomock.Any()).Return(nil)
		f.rooms.EXPECT().SaveStatus(ctx, gomock.Any(), r).Return(nil)
		f.expectNotification(shared.TopicGuestCheckedIn)

		view, err := uc.ConvertToStay(ctx, f.actor(actor.RoleOperator), commands.ConvertInput{
			BookingID:      b.ID(),
			IDProof:        "PASSPORT-1",
			AdvancePayment: 1000,
			PaymentMode:    "cash",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID(), view.ID)
		require.NotNil(t, view.BookingID)
		assert.Equal(t, b.ID(), *view.BookingID)
		assert.Equal(t, int64(1000), view.AdvancePayment)
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
		assert.Equal(t, room.StatusOccupied, r.Status())
		assert.Equal(t, created.ID(), *r.ActiveStayID())
	})

	t.Run("error: booking already converted", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		b := builder.NewBookingBuilder().ConvertedTo(uuid.New()).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)

		_, err := uc.ConvertToStay(ctx, f.actor(actor.RoleOperator), commands.ConvertInput{BookingID: b.ID()})
		assert.True(t, errs.Is(err, commands.ErrBookingNotConfirmed))
	})

	t.Run("error: room still occupied by the previous guest", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)
		r := builder.NewRoomBuilder().WithPropertyID(f.propertyID).WithStatus(room.StatusCleaning).BuildDomain()
		b := builder.NewBookingBuilder().WithRoom(r.ID(), "101").WithDates(0, 2).
			With(func(b *builder.BookingBuilder) { b.PropertyID = f.propertyID }).BuildDomain()

		f.bookings.EXPECT().Lock(ctx, gomock.Any(), b.ID()).Return(b, nil)
		f.rooms.EXPECT().Lock(ctx, gomock.Any(), r.ID()).Return(r, nil)
		f.emptySchedule(r.ID())

		_, err := uc.ConvertToStay(ctx, f.actor(actor.RoleOperator), commands.ConvertInput{BookingID: b.ID()})
		assert.True(t, errs.Is(err, commands.ErrRoomNotReady))
	})

	t.Run("error: advance without a payment mode", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewBookingUseCase(f.uow, f.policy)

		_, err := uc.ConvertToStay(ctx, f.actor(actor.RoleOperator), commands.ConvertInput{BookingID: uuid.New(), AdvancePayment: 500})
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})
}
