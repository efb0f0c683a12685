//go:build unit || e2e

package builder

import (
	"time"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"

	"github.com/google/uuid"
)

// Today is the fixed calendar day domain tests run against.
var Today = calendar.NewDate(2025, 3, 10)

type BookingBuilder struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	RoomID         uuid.UUID
	RoomNumber     string
	GuestName      string
	GuestPhone     string
	GuestEmail     string
	CheckIn        calendar.Date
	CheckOut       calendar.Date
	GuestCount     int
	Tariff         int64
	Status         booking.Status
	Notes          string
	Override       *booking.Override
	StayID         *uuid.UUID
	CreatedBy      uuid.UUID
	Today          calendar.Date
	MaxAdvanceDays int
	Now            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		PropertyID:     uuid.New(),
		RoomID:         uuid.New(),
		RoomNumber:     "101",
		GuestName:      "Asha Rao",
		GuestPhone:     "+91-9000000000",
		GuestEmail:     "asha@example.com",
		CheckIn:        Today.AddDays(2),
		CheckOut:       Today.AddDays(4),
		GuestCount:     2,
		Tariff:         2000,
		Status:         booking.StatusConfirmed,
		CreatedBy:      uuid.New(),
		Today:          Today,
		MaxAdvanceDays: booking.DefaultMaxAdvanceDays,
		Now:            time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildParams() (booking.Params, error) {
	g, err := guest.New(b.GuestName, b.GuestPhone, b.GuestEmail)
	if err != nil {
		return booking.Params{}, err
	}
	period, err := calendar.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return booking.Params{}, err
	}
	return booking.Params{
		Room: booking.RoomSpec{
			ID:         b.RoomID,
			PropertyID: b.PropertyID,
			Number:     b.RoomNumber,
			Tariff:     money.New(b.Tariff),
		},
		Guest:      g,
		Period:     period,
		GuestCount: b.GuestCount,
		Notes:      b.Notes,
		CreatedBy:  b.CreatedBy,
		Override:   b.Override,
	}, nil
}

func (b *BookingBuilder) Window() booking.Window {
	return booking.NewWindow(b.Today, b.MaxAdvanceDays)
}

// BuildNew runs every validation a new booking goes through.
func (b *BookingBuilder) BuildNew() (*booking.Booking, error) {
	p, err := b.BuildParams()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(p, b.Window(), b.Now)
}

// BuildDomain rebuilds a persisted booking with the configured status.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.PropertyID, b.RoomID,
		b.RoomNumber,
		guest.Reconstruct(b.GuestName, b.GuestPhone, b.GuestEmail),
		calendar.DateRange{Start: b.CheckIn, End: b.CheckOut},
		b.GuestCount,
		money.New(b.Tariff),
		b.Status,
		b.Notes,
		b.Override,
		b.StayID,
		b.CreatedBy,
		b.Now, b.Now,
	)
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithRoom(id uuid.UUID, number string) *BookingBuilder {
	b.RoomID = id
	b.RoomNumber = number
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

// WithDates takes offsets in days from Today.
func (b *BookingBuilder) WithDates(checkIn, checkOut int) *BookingBuilder {
	b.CheckIn = b.Today.AddDays(checkIn)
	b.CheckOut = b.Today.AddDays(checkOut)
	return b
}

func (b *BookingBuilder) WithTariff(tariff int64) *BookingBuilder {
	b.Tariff = tariff
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithOverride(by uuid.UUID, reason string) *BookingBuilder {
	b.Override = &booking.Override{By: by, Reason: reason}
	return b
}

func (b *BookingBuilder) ConvertedTo(stayID uuid.UUID) *BookingBuilder {
	b.Status = booking.StatusCheckedIn
	b.StayID = &stayID
	return b
}
