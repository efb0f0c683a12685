package booking

import "errors"

var (
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrCheckInInPast     = errors.New("check-in date cannot be in the past")
	ErrTooFarAhead       = errors.New("check-in date is beyond the advance booking window")
	ErrNotConfirmed      = errors.New("booking is not confirmed")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrOverrideReason    = errors.New("override reason is required")
)

// CheckGuestCount rejects a party with nobody in it.
func CheckGuestCount(n int) error {
	if n < 1 {
		return ErrInvalidGuestCount
	}
	return nil
}

// DefaultMaxAdvanceDays is how far ahead a check-in may be scheduled.
const DefaultMaxAdvanceDays = 120

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked-in"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsRoom reports statuses whose interval still blocks the room.
func (s Status) HoldsRoom() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
