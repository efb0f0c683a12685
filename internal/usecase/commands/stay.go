package commands

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/commands/stay.go -package=commandsmock

import (
	"context"
	"log/slog"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type WalkInInput struct {
	Room                room.Ref
	GuestName           string
	GuestPhone          string
	GuestEmail          string
	CheckIn             calendar.Date
	CheckOut            calendar.Date
	GuestCount          int
	IDProof             string
	AdvancePayment      int64
	PaymentMode         string
	Notes               string
	OverrideUnavailable bool
	OverrideReason      string
}

type LinkOrderInput struct {
	StayID  uuid.UUID
	OrderID uuid.UUID
	// Amount defaults to the order's own amount.
	Amount *int64
}

type LineItemInput struct {
	Description string
	Amount      int64
}

type CheckoutInput struct {
	StayID            uuid.UUID
	FinalPayment      int64
	PaymentMode       string
	AdditionalCharges []LineItemInput
	Discounts         []LineItemInput
	Notes             string
}

type StayCommands interface {
	CheckIn(ctx context.Context, a actor.Actor, in WalkInInput) (*queries.StayView, error)
	// LinkOrder adds an external order to the stay's ledger exactly once.
	LinkOrder(ctx context.Context, a actor.Actor, in LinkOrderInput) (*queries.LedgerTotalsView, error)
	Checkout(ctx context.Context, a actor.Actor, in CheckoutInput) (*queries.InvoiceView, error)
}

type stayUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy *shared.Policy
}

func NewStayUseCase(uow shared.UnitOfWork, policy *shared.Policy) StayCommands {
	return &stayUseCaseImpl{uow: uow, policy: policy}
}

func (uc *stayUseCaseImpl) CheckIn(ctx context.Context, a actor.Actor, in WalkInInput) (*queries.StayView, error) {
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
	advance, err := stay.NewPayment(in.AdvancePayment, in.PaymentMode)
	if err != nil {
		return nil, domainErr(err)
	}
	override, err := authorizeOverride(a, in.OverrideUnavailable, in.OverrideReason)
	if err != nil {
		return nil, err
	}
	target, err := resolveRoom(ctx, uc.uow, a, in.Room)
	if err != nil {
		return nil, err
	}

	var view *queries.StayView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Rooms().Lock(ctx, tx.DB(), target.ID())
		if derr != nil {
			return notFound(derr, ErrRoomNotFound)
		}
		if r.Status().IsBlocked() && override == nil {
			return ErrRoomUnavailable
		}

		inputs, derr := roomInputs(ctx, tx, r.ID(), period.Start)
		if derr != nil {
			return derr
		}
		inputs.IgnoreMaintenance = override != nil
		if conflicts := conflict.Detect(period, inputs); len(conflicts) > 0 {
			return newConflictError(conflicts)
		}

		now := uc.policy.Now()
		s, derr := stay.NewWalkIn(stay.WalkInParams{
			Room:       roomSpec(r),
			Guest:      g,
			Period:     period,
			GuestCount: in.GuestCount,
			Override:   override,
			CheckInParams: stay.CheckInParams{
				IDProof:   in.IDProof,
				Advance:   advance,
				Notes:     in.Notes,
				CreatedBy: a.ID,
			},
		}, uc.policy.Window(), now)
		if derr != nil {
			return domainErr(derr)
		}
		if derr = r.Occupy(s.ID(), override != nil, now); derr != nil {
			return domainErr(derr)
		}

		if derr = tx.Stays().Create(ctx, tx.DB(), s); derr != nil {
			return derr
		}
		if derr = claimNights(ctx, tx, r.ID(), s.Period(), shared.StayClaim(s.ID())); derr != nil {
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

	slog.Info("guest checked in", "stay_id", view.ID, "room_number", view.RoomNumber, "walk_in", true)
	return view, nil
}

func (uc *stayUseCaseImpl) LinkOrder(ctx context.Context, a actor.Actor, in LinkOrderInput) (*queries.LedgerTotalsView, error) {
	if in.OrderID == uuid.Nil {
		return nil, domainErr(stay.ErrMissingOrder)
	}
	if in.Amount != nil && *in.Amount < 0 {
		return nil, domainErr(stay.ErrNegativeAmount)
	}

	var totals *queries.LedgerTotalsView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the stay lock serializes every link to this stay
		s, derr := tx.Stays().Lock(ctx, tx.DB(), in.StayID)
		if derr != nil {
			return notFound(derr, ErrStayNotFound)
		}
		if s.PropertyID() != a.PropertyID {
			return ErrStayNotFound
		}

		order, derr := tx.Orders().Lock(ctx, tx.DB(), in.OrderID)
		if derr != nil {
			return notFound(derr, ErrOrderNotFound)
		}
		if order.PropertyID != s.PropertyID() {
			return ErrOrderNotFound
		}

		current := queries.LedgerTotalsViewFrom(s.ID(), s.Totals())
		switch {
		case order.IsBilled():
			return ErrOrderAlreadyBilled
		case s.HasOrder(order.ID):
			return newOrderLinkedError(current)
		case order.LinkedElsewhere(s.ID()):
			return newOrderLinkedError(current)
		case !s.IsActive():
			return domainErr(stay.ErrNotActive)
		}

		amount := money.New(order.Amount)
		if in.Amount != nil {
			amount = money.New(*in.Amount)
		}
		t, derr := s.LinkOrder(order.ID, amount, uc.policy.Now())
		if derr != nil {
			return domainErr(derr)
		}

		linked, derr := tx.Orders().MarkLinked(ctx, tx.DB(), order.ID, s.ID())
		if derr != nil {
			return derr
		}
		if !linked {
			return newOrderLinkedError(current)
		}
		if derr = tx.Stays().SaveLedger(ctx, tx.DB(), s); derr != nil {
			return derr
		}
		totals = queries.LedgerTotalsViewFrom(s.ID(), t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order linked", "stay_id", in.StayID, "order_id", in.OrderID, "order_count", totals.OrderCount)
	return totals, nil
}

func (uc *stayUseCaseImpl) Checkout(ctx context.Context, a actor.Actor, in CheckoutInput) (*queries.InvoiceView, error) {
	final, err := stay.NewPayment(in.FinalPayment, in.PaymentMode)
	if err != nil {
		return nil, domainErr(err)
	}
	charges, err := lineItems(in.AdditionalCharges)
	if err != nil {
		return nil, err
	}
	discounts, err := lineItems(in.Discounts)
	if err != nil {
		return nil, err
	}

	var invoice *queries.InvoiceView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Stays().Lock(ctx, tx.DB(), in.StayID)
		if derr != nil {
			return notFound(derr, ErrStayNotFound)
		}
		if s.PropertyID() != a.PropertyID {
			return ErrStayNotFound
		}
		if !s.IsActive() {
			return domainErr(stay.ErrNotActive)
		}

		r, derr := tx.Rooms().Lock(ctx, tx.DB(), s.RoomID())
		if derr != nil {
			return notFound(derr, ErrRoomNotFound)
		}

		now := uc.policy.Now()
		inv, derr := s.Checkout(stay.CheckoutParams{
			Final:             final,
			Discounts:         discounts,
			AdditionalCharges: charges,
			Notes:             in.Notes,
		}, now)
		if derr != nil {
			return domainErr(derr)
		}
		if derr = r.Vacate(s.ID(), now); derr != nil {
			return domainErr(derr)
		}

		if derr = tx.Stays().SaveCheckout(ctx, tx.DB(), s); derr != nil {
			return derr
		}
		if ids := s.OrderIDs(); len(ids) > 0 {
			if derr = tx.Orders().MarkBilled(ctx, tx.DB(), s.ID(), ids); derr != nil {
				return derr
			}
		}
		if derr = tx.Rooms().SaveStatus(ctx, tx.DB(), r); derr != nil {
			return derr
		}
		if derr = tx.NightClaims().Release(ctx, tx.DB(), shared.StayClaim(s.ID())); derr != nil {
			return derr
		}

		invoice = queries.InvoiceViewFrom(inv)
		return notify(ctx, tx, shared.TopicGuestCheckedOut, map[string]any{
			"stay_id":          s.ID(),
			"room_number":      s.RoomNumber(),
			"guest_name":       s.Guest().Name(),
			"total":            inv.Total.Amount(),
			"balance":          inv.Balance.Amount(),
			"billing_complete": inv.BillingComplete,
			"actor_id":         a.ID,
		}, uc.policy)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("guest checked out",
		"stay_id", invoice.StayID,
		"room_number", invoice.RoomNumber,
		"total", invoice.Total,
		"balance", invoice.Balance,
		"billing_complete", invoice.BillingComplete,
	)
	return invoice, nil
}

func lineItems(in []LineItemInput) ([]stay.LineItem, error) {
	out := make([]stay.LineItem, 0, len(in))
	for _, it := range in {
		li, err := stay.NewLineItem(it.Description, it.Amount)
		if err != nil {
			return nil, domainErr(err)
		}
		out = append(out, li)
	}
	return out, nil
}
