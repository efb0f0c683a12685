package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const endpointCreateBooking = "POST /api/bookings"

type CreateBookingInput struct {
	Room                room.Ref
	GuestName           string
	GuestPhone          string
	GuestEmail          string
	CheckIn             calendar.Date
	CheckOut            calendar.Date
	GuestCount          int
	Notes               string
	OverrideUnavailable bool
	OverrideReason      string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type ConvertInput struct {
	BookingID      uuid.UUID
	IDProof        string
	AdvancePayment int64
	PaymentMode    string
	Notes          string
}

type BookingCommands interface {
	// Create holds the room for the guest. With an idempotency key, a repeated request
	// from the same actor replays the first result instead of booking twice.
	Create(ctx context.Context, a actor.Actor, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, a actor.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
	ConvertToStay(ctx context.Context, a actor.Actor, in ConvertInput) (*queries.StayView, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy *shared.Policy
}

func NewBookingUseCase(uow shared.UnitOfWork, policy *shared.Policy) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, policy: policy}
}

func (uc *bookingUseCaseImpl) Create(
	ctx context.Context,
	a actor.Actor,
	in CreateBookingInput,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	g, err := guest.New(in.GuestName, in.GuestPhone, in.GuestEmail)
	if err != nil {
		return nil, domainErr(err)
	}
	if err := booking.CheckGuestCount(in.GuestCount); err != nil {
		return nil, domainErr(err)
	}
	period, err := uc.policy.Period(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.CheckWindow(period); err != nil {
		return nil, err
	}
	override, err := authorizeOverride(a, in.OverrideUnavailable, in.OverrideReason)
	if err != nil {
		return nil, err
	}
	target, err := resolveRoom(ctx, uc.uow, a, in.Room)
	if err != nil {
		return nil, err
	}

	hash := requestHash(in)
	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		if idempotencyKey != nil {
			replay, derr := uc.claimIdempotencyKey(ctx, tx, a, *idempotencyKey, hash)
			if derr != nil {
				return derr
			}
			if replay != nil {
				result = &CreateBookingResult{Booking: replay, IsReplayed: true}
				return nil
			}
		}

		b, derr := uc.book(ctx, tx, a, target.ID(), booking.Params{
			Guest:      g,
			Period:     period,
			GuestCount: in.GuestCount,
			Notes:      in.Notes,
			CreatedBy:  a.ID,
			Override:   override,
		})
		if derr != nil {
			return derr
		}

		if idempotencyKey != nil {
			if derr = tx.Idempotency().MarkCompleted(ctx, tx.DB(), *idempotencyKey, a.ID, b.ID()); derr != nil {
				return derr
			}
		}
		result = &CreateBookingResult{Booking: queries.BookingViewFrom(b)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		slog.Info("booking created",
			"booking_id", result.Booking.ID,
			"room_number", result.Booking.RoomNumber,
			"check_in", result.Booking.CheckIn.String(),
			"check_out", result.Booking.CheckOut.String(),
			"override", result.Booking.OverrideBy != nil,
		)
	}
	return result, nil
}

// book runs under the room's row lock: status, conflicts and night claims are all
// checked against what is committed right now.
func (uc *bookingUseCaseImpl) book(ctx context.Context, tx shared.Tx, a actor.Actor, roomID uuid.UUID, p booking.Params) (*booking.Booking, error) {
	r, err := tx.Rooms().Lock(ctx, tx.DB(), roomID)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	if r.Status().IsBlocked() && p.Override == nil {
		return nil, ErrRoomUnavailable
	}

	inputs, err := roomInputs(ctx, tx, r.ID(), p.Period.Start)
	if err != nil {
		return nil, err
	}
	inputs.IgnoreMaintenance = p.Override != nil
	if conflicts := conflict.Detect(p.Period, inputs); len(conflicts) > 0 {
		return nil, newConflictError(conflicts)
	}

	now := uc.policy.Now()
	window := uc.policy.Window()
	p.Room = roomSpec(r)
	b, err := booking.NewBooking(p, window, now)
	if err != nil {
		return nil, domainErr(err)
	}
	if err = tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		return nil, err
	}
	if err = claimNights(ctx, tx, r.ID(), b.Period(), shared.BookingClaim(b.ID())); err != nil {
		return nil, err
	}

	if window.StartsToday(b.Period()) && r.Reserve(now) {
		if err = tx.Rooms().SaveStatus(ctx, tx.DB(), r); err != nil {
			return nil, err
		}
	}

	return b, notify(ctx, tx, shared.TopicBookingCreated, map[string]any{
		"booking_id":  b.ID(),
		"room_number": b.RoomNumber(),
		"guest_name":  b.Guest().Name(),
		"guest_email": b.Guest().Email(),
		"check_in":    b.Period().Start.String(),
		"check_out":   b.Period().End.String(),
		"actor_id":    a.ID,
	}, uc.policy)
}

func (uc *bookingUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	a actor.Actor,
	key uuid.UUID,
	hash string,
) (*queries.BookingView, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, a.ID, endpointCreateBooking, hash, uc.policy.IdempotencyExpiry())
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, a.ID)
	if err != nil {
		return nil, err
	}

	now := uc.policy.Now()
	if existing.ExpiresAt.Before(now) {
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, a.ID, hash, uc.policy.IdempotencyExpiry(), now)
		if cerr != nil {
			return nil, cerr
		}
		if claimed {
			return nil, nil
		}
		return nil, ErrIdempotencyInProgress
	}

	if existing.RequestHash != hash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		b, rerr := tx.Reads().BookingByID(ctx, *existing.ResultID)
		if rerr != nil {
			return nil, rerr
		}
		return queries.BookingViewFrom(b), nil
	case shared.IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, a actor.Actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	var (
		view    *queries.BookingView
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().Lock(ctx, tx.DB(), bookingID)
		if derr != nil {
			return notFound(derr, ErrBookingNotFound)
		}
		if b.PropertyID() != a.PropertyID {
			return ErrBookingNotFound
		}

		now := uc.policy.Now()
		changed, derr = b.Cancel(now)
		if derr != nil {
			return domainErr(derr)
		}
		view = queries.BookingViewFrom(b)
		if !changed {
			return nil
		}

		if derr = tx.Bookings().SaveStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr = tx.NightClaims().Release(ctx, tx.DB(), shared.BookingClaim(b.ID())); derr != nil {
			return derr
		}
		if derr = uc.releaseReservation(ctx, tx, b); derr != nil {
			return derr
		}
		return notify(ctx, tx, shared.TopicBookingCancelled, map[string]any{
			"booking_id":  b.ID(),
			"room_number": b.RoomNumber(),
			"guest_name":  b.Guest().Name(),
			"guest_email": b.Guest().Email(),
			"actor_id":    a.ID,
		}, uc.policy)
	})
	if err != nil {
		return nil, err
	}
	if changed {
		slog.Info("booking cancelled", "booking_id", view.ID, "room_number", view.RoomNumber)
	}
	return view, nil
}

// releaseReservation puts a reserved room back to available when the cancelled
// booking was the arrival that reserved it, including a no-show cancelled days later.
// Another confirmed booking covering today keeps the room reserved.
func (uc *bookingUseCaseImpl) releaseReservation(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	today := uc.policy.Today()
	// a booking that has not started yet never reserved the room
	if b.Period().Start.After(today) {
		return nil
	}
	r, err := tx.Rooms().Lock(ctx, tx.DB(), b.RoomID())
	if err != nil {
		return notFound(err, ErrRoomNotFound)
	}
	if r.Status() != room.StatusReserved {
		return nil
	}

	holding, err := tx.Bookings().ListHoldingByRoom(ctx, tx.DB(), r.ID(), today)
	if err != nil {
		return err
	}
	for _, other := range holding {
		if other.ID() != b.ID() && other.BlocksCalendar() && other.Period().Covers(today) {
			return nil
		}
	}

	if !r.ReleaseReservation(uc.policy.Now()) {
		return nil
	}
	return tx.Rooms().SaveStatus(ctx, tx.DB(), r)
}

func (uc *bookingUseCaseImpl) ConvertToStay(ctx context.Context, a actor.Actor, in ConvertInput) (*queries.StayView, error) {
	advance, err := stay.NewPayment(in.AdvancePayment, in.PaymentMode)
	if err != nil {
		return nil, domainErr(err)
	}

	var view *queries.StayView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().Lock(ctx, tx.DB(), in.BookingID)
		if derr != nil {
			return notFound(derr, ErrBookingNotFound)
		}
		if b.PropertyID() != a.PropertyID {
			return ErrBookingNotFound
		}
		if !b.IsConfirmed() {
			return domainErr(booking.ErrNotConfirmed)
		}

		r, derr := tx.Rooms().Lock(ctx, tx.DB(), b.RoomID())
		if derr != nil {
			return notFound(derr, ErrRoomNotFound)
		}
		override := b.Override() != nil
		if r.Status().IsBlocked() && !override {
			return ErrRoomUnavailable
		}

		inputs, derr := roomInputs(ctx, tx, r.ID(), b.Period().Start)
		if derr != nil {
			return derr
		}
		excluded := b.ID()
		inputs.ExcludeBookingID = &excluded
		inputs.IgnoreMaintenance = override
		if conflicts := conflict.Detect(b.Period(), inputs); len(conflicts) > 0 {
			return newConflictError(conflicts)
		}

		now := uc.policy.Now()
		s, derr := stay.FromBooking(b, stay.CheckInParams{
			IDProof:   in.IDProof,
			Advance:   advance,
			Notes:     in.Notes,
			CreatedBy: a.ID,
		}, now)
		if derr != nil {
			return domainErr(derr)
		}
		if derr = r.Occupy(s.ID(), override, now); derr != nil {
			return domainErr(derr)
		}
		if derr = b.MarkCheckedIn(s.ID(), now); derr != nil {
			return domainErr(derr)
		}

		if derr = tx.Stays().Create(ctx, tx.DB(), s); derr != nil {
			return derr
		}
		if derr = tx.Bookings().SaveStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if derr = tx.NightClaims().Transfer(ctx, tx.DB(), shared.BookingClaim(b.ID()), shared.StayClaim(s.ID())); derr != nil {
			return derr
		}
		if derr = tx.Rooms().SaveStatus(ctx, tx.DB(), r); derr != nil {
			return derr
		}

		view = queries.StayViewFrom(s)
		return notify(ctx, tx, shared.TopicGuestCheckedIn, checkedInPayload(s, a), uc.policy)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("guest checked in", "stay_id", view.ID, "booking_id", in.BookingID, "room_number", view.RoomNumber)
	return view, nil
}

func checkedInPayload(s *stay.Stay, a actor.Actor) map[string]any {
	return map[string]any{
		"stay_id":     s.ID(),
		"booking_id":  s.BookingID(),
		"room_number": s.RoomNumber(),
		"guest_name":  s.Guest().Name(),
		"guest_phone": s.Guest().Phone(),
		"check_out":   s.Period().End.String(),
		"actor_id":    a.ID,
	}
}

// requestHash fingerprints what the caller asked for, so a reused key with a different body is caught.
func requestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(struct {
		CreateBookingInput
		Room string
	}{CreateBookingInput: in, Room: in.Room.String()})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
