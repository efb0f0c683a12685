package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var validationErrors = []error{
	calendar.ErrInvalidDate,
	calendar.ErrInvalidRange,
	guest.ErrEmptyName,
	guest.ErrNameTooLong,
	guest.ErrInvalidMail,
	money.ErrNegativeAmount,
	booking.ErrInvalidGuestCount,
	booking.ErrCheckInInPast,
	booking.ErrOverrideReason,
	stay.ErrInvalidPaymentMode,
	stay.ErrEmptyDescription,
	stay.ErrNegativeAmount,
	stay.ErrIDProofTooLong,
	stay.ErrMissingOrder,
	stay.ErrPaymentModeMissing,
	room.ErrEmptyRoomNumber,
	room.ErrRoomNumberTooLong,
	room.ErrInvalidCapacity,
	room.ErrNegativeTariff,
	room.ErrEmptyMaintenanceReason,
}

// domainErr re-marks a domain error with the command sentinel the handlers map to a status.
func domainErr(err error) error {
	if err == nil {
		return nil
	}
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			return errs.Mark(err, ErrValidation)
		}
	}
	switch {
	case errs.Is(err, booking.ErrTooFarAhead):
		return errs.Mark(err, ErrBookingTooFarAhead)
	case errs.Is(err, booking.ErrNotConfirmed):
		return errs.Mark(err, ErrBookingNotConfirmed)
	case errs.Is(err, stay.ErrNotActive):
		return errs.Mark(err, ErrStayNotActive)
	case errs.Is(err, stay.ErrOrderAlreadyLinked):
		return errs.Mark(err, ErrOrderAlreadyLinked)
	case errs.Is(err, room.ErrRoomNotReady):
		return errs.Mark(err, ErrRoomNotReady)
	case errs.Is(err, room.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidRoomTransition)
	case errs.Is(err, room.ErrMaintenanceInactive):
		return errs.Mark(err, ErrMaintenanceInactive)
	}
	return err
}

func notFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// authorizeOverride lets a request through a maintenance or out-of-service block.
// It needs an explicit flag, a reason, and an admin.
func authorizeOverride(a actor.Actor, requested bool, reason string) (*booking.Override, error) {
	if !requested {
		return nil, nil
	}
	if !a.CanOverrideUnavailable() || strings.TrimSpace(reason) == "" {
		return nil, ErrOverrideNotPermitted
	}
	return &booking.Override{By: a.ID, Reason: reason}, nil
}

func roomSpec(r *room.Room) booking.RoomSpec {
	return booking.RoomSpec{
		ID:         r.ID(),
		PropertyID: r.PropertyID(),
		Number:     r.Number(),
		Tariff:     r.Tariff(),
	}
}

// resolveRoom looks the room up by id or number before any transaction starts.
func resolveRoom(ctx context.Context, uow shared.UnitOfWork, a actor.Actor, ref room.Ref) (*room.Room, error) {
	r, err := uow.CommandReads().RoomByRef(ctx, a.PropertyID, ref)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	if r.PropertyID() != a.PropertyID {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// roomInputs loads the room's schedule from since onwards. The room row must already be locked.
func roomInputs(ctx context.Context, tx shared.Tx, roomID uuid.UUID, since calendar.Date) (conflict.Inputs, error) {
	bookings, err := tx.Bookings().ListHoldingByRoom(ctx, tx.DB(), roomID, since)
	if err != nil {
		return conflict.Inputs{}, err
	}
	stays, err := tx.Stays().ListActiveByRoom(ctx, tx.DB(), roomID)
	if err != nil {
		return conflict.Inputs{}, err
	}
	maintenance, err := tx.Maintenance().ListActiveByRoom(ctx, tx.DB(), roomID, since)
	if err != nil {
		return conflict.Inputs{}, err
	}
	return conflict.Inputs{Bookings: bookings, Stays: stays, Maintenance: maintenance}, nil
}

// claimNights is the second guard against double booking: a night already held by
// someone else is caught by the primary key even if the row lock was bypassed, and
// the holders come back as conflicts.
func claimNights(ctx context.Context, tx shared.Tx, roomID uuid.UUID, period calendar.DateRange, owner shared.ClaimOwner) error {
	err := tx.NightClaims().Claim(ctx, tx.DB(), roomID, period.EachNight(), owner)
	var collision *shared.ClaimCollisionError
	if errs.As(err, &collision) {
		return newConflictError(claimConflicts(collision.Taken))
	}
	return err
}

// claimConflicts folds held nights into one conflict per owner run. Nights are
// expected in ascending order; a gap starts a new range.
func claimConflicts(taken []shared.NightClaim) []conflict.Conflict {
	var out []conflict.Conflict
	for _, c := range taken {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.ID == c.Owner.ID && string(last.Source) == c.Owner.Kind && last.Range.End.Equal(c.Night) {
				last.Range.End = c.Night.AddDays(1)
				last.Reason = claimReason(c.Owner, last.Range)
				continue
			}
		}
		r := calendar.DateRange{Start: c.Night, End: c.Night.AddDays(1)}
		out = append(out, conflict.Conflict{
			Source: conflict.Source(c.Owner.Kind),
			ID:     c.Owner.ID,
			Range:  r,
			Reason: claimReason(c.Owner, r),
		})
	}
	return out
}

func claimReason(owner shared.ClaimOwner, r calendar.DateRange) string {
	return "room nights " + r.String() + " are already held by " + owner.Kind + " " + owner.ID.String()
}

func notify(ctx context.Context, tx shared.Tx, topic string, payload map[string]any, policy *shared.Policy) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, body, policy.Now()); err != nil {
		slog.Error("failed to enqueue notification", "topic", topic, "error", err)
		return err
	}
	return nil
}
