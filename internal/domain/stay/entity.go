package stay

import (
	"strings"
	"time"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"

	"github.com/google/uuid"
)

type Stay struct {
	id              uuid.UUID
	propertyID      uuid.UUID
	roomID          uuid.UUID
	roomNumber      string
	bookingID       *uuid.UUID
	guest           guest.Info
	idProof         string
	period          calendar.DateRange
	tariff          money.Money
	ledger          []LedgerEntry
	charges         []LineItem
	discounts       []LineItem
	advance         Payment
	final           Payment
	notes           string
	status          Status
	billingComplete bool
	override        *booking.Override
	checkedOutAt    *time.Time
	createdBy       uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

type CheckInParams struct {
	IDProof   string
	Advance   Payment
	Notes     string
	CreatedBy uuid.UUID
}

type WalkInParams struct {
	Room       booking.RoomSpec
	Guest      guest.Info
	Period     calendar.DateRange
	GuestCount int
	Override   *booking.Override
	CheckInParams
}

func newStay(p CheckInParams, now time.Time) (*Stay, error) {
	idProof := strings.TrimSpace(p.IDProof)
	if len(idProof) > MaxIDProofLength {
		return nil, ErrIDProofTooLong
	}
	return &Stay{
		id:        uuid.New(),
		idProof:   idProof,
		advance:   p.Advance,
		notes:     strings.TrimSpace(p.Notes),
		status:    StatusCheckedIn,
		createdBy: p.CreatedBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// FromBooking seeds a stay with the booking's guest, dates and tariff snapshot.
func FromBooking(b *booking.Booking, p CheckInParams, now time.Time) (*Stay, error) {
	if !b.IsConfirmed() {
		return nil, booking.ErrNotConfirmed
	}
	s, err := newStay(p, now)
	if err != nil {
		return nil, err
	}
	bookingID := b.ID()
	s.propertyID = b.PropertyID()
	s.roomID = b.RoomID()
	s.roomNumber = b.RoomNumber()
	s.bookingID = &bookingID
	s.guest = b.Guest()
	s.period = b.Period()
	s.tariff = b.Tariff()
	s.override = b.Override()
	return s, nil
}

// NewWalkIn applies the same window rules as a booking. Conflicts are the caller's job.
func NewWalkIn(p WalkInParams, window booking.Window, now time.Time) (*Stay, error) {
	if err := booking.CheckGuestCount(p.GuestCount); err != nil {
		return nil, err
	}
	if err := window.Check(p.Period); err != nil {
		return nil, err
	}
	s, err := newStay(p.CheckInParams, now)
	if err != nil {
		return nil, err
	}
	if p.Override != nil {
		reason := strings.TrimSpace(p.Override.Reason)
		if reason == "" {
			return nil, booking.ErrOverrideReason
		}
		s.override = &booking.Override{By: p.Override.By, Reason: reason}
	}
	s.propertyID = p.Room.PropertyID
	s.roomID = p.Room.ID
	s.roomNumber = p.Room.Number
	s.guest = p.Guest
	s.period = p.Period
	s.tariff = p.Room.Tariff
	return s, nil
}

type Snapshot struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	RoomID          uuid.UUID
	RoomNumber      string
	BookingID       *uuid.UUID
	Guest           guest.Info
	IDProof         string
	Period          calendar.DateRange
	Tariff          money.Money
	Ledger          []LedgerEntry
	Charges         []LineItem
	Discounts       []LineItem
	Advance         Payment
	Final           Payment
	Notes           string
	Status          Status
	BillingComplete bool
	Override        *booking.Override
	CheckedOutAt    *time.Time
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Stay {
	return &Stay{
		id:              s.ID,
		propertyID:      s.PropertyID,
		roomID:          s.RoomID,
		roomNumber:      s.RoomNumber,
		bookingID:       s.BookingID,
		guest:           s.Guest,
		idProof:         s.IDProof,
		period:          s.Period,
		tariff:          s.Tariff,
		ledger:          s.Ledger,
		charges:         s.Charges,
		discounts:       s.Discounts,
		advance:         s.Advance,
		final:           s.Final,
		notes:           s.Notes,
		status:          s.Status,
		billingComplete: s.BillingComplete,
		override:        s.Override,
		checkedOutAt:    s.CheckedOutAt,
		createdBy:       s.CreatedBy,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (s *Stay) HasOrder(orderID uuid.UUID) bool {
	for _, e := range s.ledger {
		if e.OrderID == orderID {
			return true
		}
	}
	return false
}

// LinkOrder appends orderID to the ledger. A repeated orderID leaves the ledger untouched
// and returns ErrOrderAlreadyLinked together with the unchanged totals.
func (s *Stay) LinkOrder(orderID uuid.UUID, amount money.Money, now time.Time) (LedgerTotals, error) {
	if orderID == uuid.Nil {
		return LedgerTotals{}, ErrMissingOrder
	}
	if s.status != StatusCheckedIn {
		return s.Totals(), ErrNotActive
	}
	if amount.IsNegative() {
		return s.Totals(), ErrNegativeAmount
	}
	if s.HasOrder(orderID) {
		return s.Totals(), ErrOrderAlreadyLinked
	}
	s.ledger = append(s.ledger, LedgerEntry{OrderID: orderID, Amount: amount, LinkedAt: now})
	s.updatedAt = now
	return s.Totals(), nil
}

func (s *Stay) Totals() LedgerTotals {
	food := money.Zero()
	for _, e := range s.ledger {
		food = food.Add(e.Amount)
	}
	return LedgerTotals{OrderCount: len(s.ledger), FoodTotal: food}
}

type CheckoutParams struct {
	Final             Payment
	Discounts         []LineItem
	AdditionalCharges []LineItem
	Notes             string
}

// Checkout closes the stay and returns the invoice computed from the ledger.
func (s *Stay) Checkout(p CheckoutParams, now time.Time) (Invoice, error) {
	if s.status != StatusCheckedIn {
		return Invoice{}, ErrNotActive
	}
	s.final = p.Final
	s.charges = append(s.charges, p.AdditionalCharges...)
	s.discounts = append(s.discounts, p.Discounts...)
	if notes := strings.TrimSpace(p.Notes); notes != "" {
		if s.notes != "" {
			s.notes += "\n"
		}
		s.notes += notes
	}
	at := now
	s.status = StatusCheckedOut
	s.checkedOutAt = &at
	s.updatedAt = now

	inv := BuildInvoice(s)
	s.billingComplete = inv.BillingComplete
	return inv, nil
}

func (s *Stay) OrderIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.ledger))
	for _, e := range s.ledger {
		ids = append(ids, e.OrderID)
	}
	return ids
}

func (s *Stay) Nights() int    { return s.period.Nights() }
func (s *Stay) IsActive() bool { return s.status == StatusCheckedIn }

func (s *Stay) ID() uuid.UUID                 { return s.id }
func (s *Stay) PropertyID() uuid.UUID         { return s.propertyID }
func (s *Stay) RoomID() uuid.UUID             { return s.roomID }
func (s *Stay) RoomNumber() string            { return s.roomNumber }
func (s *Stay) BookingID() *uuid.UUID         { return s.bookingID }
func (s *Stay) Guest() guest.Info             { return s.guest }
func (s *Stay) IDProof() string               { return s.idProof }
func (s *Stay) Period() calendar.DateRange    { return s.period }
func (s *Stay) Tariff() money.Money           { return s.tariff }
func (s *Stay) Ledger() []LedgerEntry         { return s.ledger }
func (s *Stay) AdditionalCharges() []LineItem { return s.charges }
func (s *Stay) Discounts() []LineItem         { return s.discounts }
func (s *Stay) Advance() Payment              { return s.advance }
func (s *Stay) Final() Payment                { return s.final }
func (s *Stay) Notes() string                 { return s.notes }
func (s *Stay) Status() Status                { return s.status }
func (s *Stay) BillingComplete() bool         { return s.billingComplete }
func (s *Stay) Override() *booking.Override   { return s.override }
func (s *Stay) CheckedOutAt() *time.Time      { return s.checkedOutAt }
func (s *Stay) CreatedBy() uuid.UUID          { return s.createdBy }
func (s *Stay) CreatedAt() time.Time          { return s.createdAt }
func (s *Stay) UpdatedAt() time.Time          { return s.updatedAt }
