package conflict

import (
	"sort"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"

	"github.com/google/uuid"
)

type Source string

const (
	SourceBooking     Source = "booking"
	SourceStay        Source = "stay"
	SourceMaintenance Source = "maintenance"
)

// Conflict is an existing record whose interval overlaps the candidate on the same room.
type Conflict struct {
	Source    Source
	ID        uuid.UUID
	GuestName string
	Range     calendar.DateRange
	Reason    string
}

// Inputs is everything already scheduled on one room.
type Inputs struct {
	Bookings    []*booking.Booking
	Stays       []*stay.Stay
	Maintenance []*room.MaintenanceSchedule

	// ExcludeBookingID skips a booking that is being converted or re-validated.
	ExcludeBookingID *uuid.UUID
	// IgnoreMaintenance is set when an authorized override lets the request through a block.
	IgnoreMaintenance bool
}

// Detect lists every overlap between candidate and the room's schedule, ordered by start day.
func Detect(candidate calendar.DateRange, in Inputs) []Conflict {
	var out []Conflict

	for _, b := range in.Bookings {
		if !b.BlocksCalendar() {
			continue
		}
		if in.ExcludeBookingID != nil && b.ID() == *in.ExcludeBookingID {
			continue
		}
		if candidate.Overlaps(b.Period()) {
			out = append(out, Conflict{
				Source:    SourceBooking,
				ID:        b.ID(),
				GuestName: b.Guest().Name(),
				Range:     b.Period(),
				Reason:    "room is booked by " + b.Guest().Name() + " for " + b.Period().String(),
			})
		}
	}

	for _, s := range in.Stays {
		if !s.IsActive() {
			continue
		}
		if candidate.Overlaps(s.Period()) {
			out = append(out, Conflict{
				Source:    SourceStay,
				ID:        s.ID(),
				GuestName: s.Guest().Name(),
				Range:     s.Period(),
				Reason:    "room is occupied by " + s.Guest().Name() + " for " + s.Period().String(),
			})
		}
	}

	if !in.IgnoreMaintenance {
		for _, m := range in.Maintenance {
			if !m.IsActive() {
				continue
			}
			if candidate.Overlaps(m.Period()) {
				out = append(out, Conflict{
					Source: SourceMaintenance,
					ID:     m.ID(),
					Range:  m.Period(),
					Reason: "room is under maintenance for " + m.Period().String() + ": " + m.Reason(),
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start.Before(out[j].Range.Start)
	})
	return out
}
