package room

import (
	"strings"
	"time"

	"room-stay-engine/internal/domain/money"

	"github.com/google/uuid"
)

type Room struct {
	id           uuid.UUID
	propertyID   uuid.UUID
	number       string
	roomType     string
	floor        string
	capacity     int
	tariff       money.Money
	amenities    []string
	status       Status
	activeStayID *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

type Spec struct {
	PropertyID uuid.UUID
	Number     string
	Type       string
	Floor      string
	Capacity   int
	Tariff     int64
	Amenities  []string
}

func NewRoom(spec Spec, now time.Time) (*Room, error) {
	number := strings.TrimSpace(spec.Number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return nil, ErrRoomNumberTooLong
	}
	if spec.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	tariff, err := money.NewNonNegative(spec.Tariff)
	if err != nil {
		return nil, ErrNegativeTariff
	}

	return &Room{
		id:         uuid.New(),
		propertyID: spec.PropertyID,
		number:     number,
		roomType:   strings.TrimSpace(spec.Type),
		floor:      strings.TrimSpace(spec.Floor),
		capacity:   spec.Capacity,
		tariff:     tariff,
		amenities:  spec.Amenities,
		status:     StatusAvailable,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRoom(
	id, propertyID uuid.UUID,
	number, roomType, floor string,
	capacity int,
	tariff money.Money,
	amenities []string,
	status Status,
	activeStayID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		propertyID:   propertyID,
		number:       number,
		roomType:     roomType,
		floor:        floor,
		capacity:     capacity,
		tariff:       tariff,
		amenities:    amenities,
		status:       status,
		activeStayID: activeStayID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Reserve marks an available room as held for a guest arriving today.
// Any other status is left alone: a room still occupied by a guest leaving today keeps that status.
func (r *Room) Reserve(now time.Time) bool {
	if r.status != StatusAvailable {
		return false
	}
	r.status = StatusReserved
	r.updatedAt = now
	return true
}

// ReleaseReservation undoes Reserve.
func (r *Room) ReleaseReservation(now time.Time) bool {
	if r.status != StatusReserved {
		return false
	}
	r.status = StatusAvailable
	r.updatedAt = now
	return true
}

// Occupy hands the room to stayID. A room can only be entered from available or reserved,
// or from a blocked status when the caller holds an authorized override.
func (r *Room) Occupy(stayID uuid.UUID, overrideBlocked bool, now time.Time) error {
	switch {
	case r.status == StatusAvailable, r.status == StatusReserved:
	case r.status.IsBlocked() && overrideBlocked:
	case r.status.IsBlocked():
		return ErrInvalidTransition
	default:
		return ErrRoomNotReady
	}
	id := stayID
	r.status = StatusOccupied
	r.activeStayID = &id
	r.updatedAt = now
	return nil
}

// Vacate sends the room to housekeeping after checkout.
func (r *Room) Vacate(stayID uuid.UUID, now time.Time) error {
	if r.status != StatusOccupied || r.activeStayID == nil || *r.activeStayID != stayID {
		return ErrInvalidTransition
	}
	r.status = StatusCleaning
	r.activeStayID = nil
	r.updatedAt = now
	return nil
}

func (r *Room) MarkReady(now time.Time) error {
	if r.status != StatusCleaning && r.status != StatusMaintenance {
		return ErrInvalidTransition
	}
	r.status = StatusAvailable
	r.updatedAt = now
	return nil
}

func (r *Room) BeginMaintenance(now time.Time) error {
	switch r.status {
	case StatusAvailable, StatusCleaning, StatusReserved:
		r.status = StatusMaintenance
		r.updatedAt = now
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (r *Room) TakeOutOfService(now time.Time) error {
	if r.status == StatusOccupied {
		return ErrInvalidTransition
	}
	r.status = StatusOutOfService
	r.updatedAt = now
	return nil
}

func (r *Room) ReturnToService(now time.Time) error {
	if r.status != StatusOutOfService {
		return ErrInvalidTransition
	}
	r.status = StatusAvailable
	r.updatedAt = now
	return nil
}

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) PropertyID() uuid.UUID    { return r.propertyID }
func (r *Room) Number() string           { return r.number }
func (r *Room) Type() string             { return r.roomType }
func (r *Room) Floor() string            { return r.floor }
func (r *Room) Capacity() int            { return r.capacity }
func (r *Room) Tariff() money.Money      { return r.tariff }
func (r *Room) Amenities() []string      { return r.amenities }
func (r *Room) Status() Status           { return r.status }
func (r *Room) ActiveStayID() *uuid.UUID { return r.activeStayID }
func (r *Room) CreatedAt() time.Time     { return r.createdAt }
func (r *Room) UpdatedAt() time.Time     { return r.updatedAt }
