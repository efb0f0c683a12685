package booking

import "room-stay-engine/internal/domain/calendar"

// Window is the range of check-in days the property accepts, evaluated against a fixed today.
type Window struct {
	Today          calendar.Date
	MaxAdvanceDays int
}

func NewWindow(today calendar.Date, maxAdvanceDays int) Window {
	if maxAdvanceDays <= 0 {
		maxAdvanceDays = DefaultMaxAdvanceDays
	}
	return Window{Today: today, MaxAdvanceDays: maxAdvanceDays}
}

// Check is shared by bookings and walk-in stays.
func (w Window) Check(period calendar.DateRange) error {
	if period.Start.Before(w.Today) {
		return ErrCheckInInPast
	}
	if period.Start.After(w.Today.AddDays(w.MaxAdvanceDays)) {
		return ErrTooFarAhead
	}
	return nil
}

func (w Window) StartsToday(period calendar.DateRange) bool {
	return period.Start.Equal(w.Today)
}
