package room

import "errors"

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 32 characters)")
	ErrInvalidCapacity   = errors.New("capacity must be at least 1")
	ErrNegativeTariff    = errors.New("tariff cannot be negative")
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrInvalidTransition = errors.New("room status transition not allowed")
	ErrRoomNotReady      = errors.New("room is not ready for a new guest")
	ErrEmptyRef          = errors.New("room reference is empty")
)

const MaxRoomNumberLength = 32

type Status string

const (
	StatusAvailable    Status = "available"
	StatusReserved     Status = "reserved"
	StatusOccupied     Status = "occupied"
	StatusCleaning     Status = "cleaning"
	StatusMaintenance  Status = "maintenance"
	StatusOutOfService Status = "out-of-service"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusCleaning, StatusMaintenance, StatusOutOfService:
		return true
	default:
		return false
	}
}

// IsBlocked reports statuses that refuse new guests unless an override is authorized.
func (s Status) IsBlocked() bool {
	return s == StatusMaintenance || s == StatusOutOfService
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
