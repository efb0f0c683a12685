package shared

import (
	"time"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/pkg/clock"
	"room-stay-engine/internal/pkg/config"
	"room-stay-engine/internal/pkg/errs"
)

// Policy answers "what day is it at the property" and the front-desk limits that depend on it.
type Policy struct {
	clock          clock.Clock
	location       *time.Location
	maxAdvanceDays int
	idempotencyTTL time.Duration
}

func NewPolicy(cfg config.StayConfig, clk clock.Clock) (*Policy, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	ttl := cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Policy{
		clock:          clk,
		location:       loc,
		maxAdvanceDays: cfg.MaxAdvanceDays,
		idempotencyTTL: ttl,
	}, nil
}

func (p *Policy) Now() time.Time {
	return p.clock.Now()
}

func (p *Policy) Today() calendar.Date {
	return calendar.DateOf(p.clock.Now(), p.location)
}

func (p *Policy) Window() booking.Window {
	return booking.NewWindow(p.Today(), p.maxAdvanceDays)
}

func (p *Policy) IdempotencyExpiry() time.Time {
	return p.clock.Now().Add(p.idempotencyTTL)
}

// Period builds the half-open stay interval from request dates.
func (p *Policy) Period(checkIn, checkOut calendar.Date) (calendar.DateRange, error) {
	period, err := calendar.NewDateRange(checkIn, checkOut)
	if err != nil {
		return calendar.DateRange{}, errs.Mark(err, ErrValidation)
	}
	return period, nil
}

// CheckWindow rejects check-in days in the past or beyond the advance limit.
func (p *Policy) CheckWindow(period calendar.DateRange) error {
	err := p.Window().Check(period)
	switch {
	case err == nil:
		return nil
	case errs.Is(err, booking.ErrTooFarAhead):
		return errs.Mark(err, ErrBookingTooFarAhead)
	default:
		return errs.Mark(err, ErrValidation)
	}
}
