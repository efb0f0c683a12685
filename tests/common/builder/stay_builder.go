//go:build unit || e2e

package builder

import (
	"time"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/domain/stay"

	"github.com/google/uuid"
)

type StayBuilder struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	RoomID      uuid.UUID
	RoomNumber  string
	BookingID   *uuid.UUID
	GuestName   string
	IDProof     string
	CheckIn     calendar.Date
	CheckOut    calendar.Date
	Tariff      int64
	Ledger      []stay.LedgerEntry
	Advance     int64
	AdvanceMode stay.PaymentMode
	Status      stay.Status
	Now         time.Time
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		ID:          uuid.New(),
		PropertyID:  uuid.New(),
		RoomID:      uuid.New(),
		RoomNumber:  "101",
		GuestName:   "Asha Rao",
		IDProof:     "PASSPORT-X1234",
		CheckIn:     Today,
		CheckOut:    Today.AddDays(2),
		Tariff:      2000,
		AdvanceMode: stay.PaymentNone,
		Status:      stay.StatusCheckedIn,
		Now:         time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func (s *StayBuilder) With(mutate func(*StayBuilder)) *StayBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StayBuilder) BuildDomain() *stay.Stay {
	return stay.Reconstruct(stay.Snapshot{
		ID:         s.ID,
		PropertyID: s.PropertyID,
		RoomID:     s.RoomID,
		RoomNumber: s.RoomNumber,
		BookingID:  s.BookingID,
		Guest:      guest.Reconstruct(s.GuestName, "", ""),
		IDProof:    s.IDProof,
		Period:     calendar.DateRange{Start: s.CheckIn, End: s.CheckOut},
		Tariff:     money.New(s.Tariff),
		Ledger:     s.Ledger,
		Advance:    stay.Payment{Amount: money.New(s.Advance), Mode: s.AdvanceMode},
		Status:     s.Status,
		CreatedAt:  s.Now,
		UpdatedAt:  s.Now,
	})
}

// Fluent builder methods
func (s *StayBuilder) WithRoom(id uuid.UUID, number string) *StayBuilder {
	s.RoomID = id
	s.RoomNumber = number
	return s
}

func (s *StayBuilder) WithGuestName(name string) *StayBuilder {
	s.GuestName = name
	return s
}

// WithDates takes offsets in days from Today.
func (s *StayBuilder) WithDates(checkIn, checkOut int) *StayBuilder {
	s.CheckIn = Today.AddDays(checkIn)
	s.CheckOut = Today.AddDays(checkOut)
	return s
}

func (s *StayBuilder) WithTariff(tariff int64) *StayBuilder {
	s.Tariff = tariff
	return s
}

func (s *StayBuilder) WithAdvance(amount int64, mode stay.PaymentMode) *StayBuilder {
	s.Advance = amount
	s.AdvanceMode = mode
	return s
}

func (s *StayBuilder) WithBooking(id uuid.UUID) *StayBuilder {
	s.BookingID = &id
	return s
}

func (s *StayBuilder) WithOrder(orderID uuid.UUID, amount int64) *StayBuilder {
	s.Ledger = append(s.Ledger, stay.LedgerEntry{OrderID: orderID, Amount: money.New(amount), LinkedAt: s.Now})
	return s
}

func (s *StayBuilder) CheckedOut() *StayBuilder {
	s.Status = stay.StatusCheckedOut
	return s
}
