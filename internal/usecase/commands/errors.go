package commands

import (
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"
)

var (
	ErrValidation           = shared.ErrValidation
	ErrBookingTooFarAhead   = shared.ErrBookingTooFarAhead
	ErrOverrideNotPermitted = shared.ErrOverrideNotPermitted
	ErrRoomNotFound         = shared.ErrRoomNotFound
	ErrBookingNotFound      = shared.ErrBookingNotFound
	ErrStayNotFound         = shared.ErrStayNotFound
	ErrConcurrencyConflict  = shared.ErrConcurrencyConflict

	ErrRoomUnavailable       = errs.New("room unavailable")
	ErrRoomNotReady          = errs.New("room not ready for a guest")
	ErrInvalidRoomTransition = errs.New("invalid room status transition")
	ErrDuplicateRoomNumber   = errs.New("room number already exists")
	ErrBookingConflict       = errs.New("booking conflict")
	ErrBookingNotConfirmed   = errs.New("booking not confirmed")
	ErrStayNotActive         = errs.New("stay not active")
	ErrOrderNotFound         = errs.New("order not found")
	ErrOrderAlreadyLinked    = errs.New("order already linked")
	ErrOrderAlreadyBilled    = errs.New("order already billed")
	ErrMaintenanceNotFound   = errs.New("maintenance schedule not found")
	ErrMaintenanceInactive   = errs.New("maintenance schedule already cleared")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused  = errs.New("idempotency key reused with a different request")
)

// ConflictError lists what already occupies the requested nights.
type ConflictError struct {
	Conflicts []queries.ConflictView
}

func (e *ConflictError) Error() string {
	return "booking conflict"
}

func newConflictError(conflicts []conflict.Conflict) error {
	return errs.Mark(&ConflictError{Conflicts: queries.ConflictViewsFrom(conflicts)}, ErrBookingConflict)
}

// OrderLinkedError carries the ledger totals so a retried link sees the first result.
type OrderLinkedError struct {
	Totals queries.LedgerTotalsView
}

func (e *OrderLinkedError) Error() string {
	return "order already linked"
}

func newOrderLinkedError(totals *queries.LedgerTotalsView) error {
	return errs.Mark(&OrderLinkedError{Totals: *totals}, ErrOrderAlreadyLinked)
}
