package shared

import (
	"room-stay-engine/internal/pkg/errs"
)

// Sentinels used by both the command and the query side.
var (
	ErrValidation           = errs.New("validation failed")
	ErrBookingTooFarAhead   = errs.New("check-in is too far ahead")
	ErrOverrideNotPermitted = errs.New("override not permitted")
	ErrRoomNotFound         = errs.New("room not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrStayNotFound         = errs.New("stay not found")

	// ErrConcurrencyConflict means the transaction kept losing to concurrent writers.
	// The request is safe to retry.
	ErrConcurrencyConflict = errs.New("concurrent update, retry the request")
)

// ClaimCollisionError lists the requested nights that another booking or stay already holds.
type ClaimCollisionError struct {
	Taken []NightClaim
}

func (e *ClaimCollisionError) Error() string {
	return "room nights already claimed"
}
