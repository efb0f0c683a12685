package booking

import (
	"strings"
	"time"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"

	"github.com/google/uuid"
)

// Override records who let a booking through a maintenance or out-of-service block and why.
type Override struct {
	By     uuid.UUID
	Reason string
}

type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	roomID     uuid.UUID
	roomNumber string
	guest      guest.Info
	period     calendar.DateRange
	guestCount int
	tariff     money.Money
	status     Status
	notes      string
	override   *Override
	stayID     *uuid.UUID
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

type RoomSpec struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Number     string
	Tariff     money.Money
}

type Params struct {
	Room       RoomSpec
	Guest      guest.Info
	Period     calendar.DateRange
	GuestCount int
	Notes      string
	CreatedBy  uuid.UUID
	Override   *Override
}

// NewBooking validates the request against the booking window. Room status and
// conflicts are checked by the caller, which owns the lock on the room.
func NewBooking(p Params, window Window, now time.Time) (*Booking, error) {
	if err := CheckGuestCount(p.GuestCount); err != nil {
		return nil, err
	}
	if err := window.Check(p.Period); err != nil {
		return nil, err
	}
	var override *Override
	if p.Override != nil {
		reason := strings.TrimSpace(p.Override.Reason)
		if reason == "" {
			return nil, ErrOverrideReason
		}
		override = &Override{By: p.Override.By, Reason: reason}
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: p.Room.PropertyID,
		roomID:     p.Room.ID,
		roomNumber: p.Room.Number,
		guest:      p.Guest,
		period:     p.Period,
		guestCount: p.GuestCount,
		tariff:     p.Room.Tariff,
		status:     StatusConfirmed,
		notes:      strings.TrimSpace(p.Notes),
		override:   override,
		createdBy:  p.CreatedBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, propertyID, roomID uuid.UUID,
	roomNumber string,
	g guest.Info,
	period calendar.DateRange,
	guestCount int,
	tariff money.Money,
	status Status,
	notes string,
	override *Override,
	stayID *uuid.UUID,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		roomID:     roomID,
		roomNumber: roomNumber,
		guest:      g,
		period:     period,
		guestCount: guestCount,
		tariff:     tariff,
		status:     status,
		notes:      notes,
		override:   override,
		stayID:     stayID,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel reports whether anything changed; cancelling twice is not an error.
// A booking that already became a stay cannot be cancelled.
func (b *Booking) Cancel(now time.Time) (bool, error) {
	switch b.status {
	case StatusCancelled:
		return false, nil
	case StatusCheckedIn:
		return false, ErrNotConfirmed
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return true, nil
}

func (b *Booking) MarkCheckedIn(stayID uuid.UUID, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	id := stayID
	b.status = StatusCheckedIn
	b.stayID = &id
	b.updatedAt = now
	return nil
}

func (b *Booking) Nights() int { return b.period.Nights() }

// TotalEstimate is the room-only price quoted at booking time.
func (b *Booking) TotalEstimate() money.Money { return b.tariff.Times(b.period.Nights()) }

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }

// BlocksCalendar reports whether the booking itself holds nights on the room.
// Once converted, the stay holds them instead.
func (b *Booking) BlocksCalendar() bool {
	return b.status.HoldsRoom() && b.stayID == nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) PropertyID() uuid.UUID      { return b.propertyID }
func (b *Booking) RoomID() uuid.UUID          { return b.roomID }
func (b *Booking) RoomNumber() string         { return b.roomNumber }
func (b *Booking) Guest() guest.Info          { return b.guest }
func (b *Booking) Period() calendar.DateRange { return b.period }
func (b *Booking) GuestCount() int            { return b.guestCount }
func (b *Booking) Tariff() money.Money        { return b.tariff }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Notes() string              { return b.notes }
func (b *Booking) Override() *Override        { return b.override }
func (b *Booking) StayID() *uuid.UUID         { return b.stayID }
func (b *Booking) CreatedBy() uuid.UUID       { return b.createdBy }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
