package availability

import (
	"time"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"

	"github.com/google/uuid"
)

// ScheduledStatus is the calendar view of a room on one day.
type ScheduledStatus string

const (
	ScheduledOccupied     ScheduledStatus = "occupied"
	ScheduledMaintenance  ScheduledStatus = "maintenance"
	ScheduledCleaning     ScheduledStatus = "cleaning"
	ScheduledOutOfService ScheduledStatus = "out-of-service"
	ScheduledBooked       ScheduledStatus = "booked"
	ScheduledAvailable    ScheduledStatus = "available"
)

// Schedule is one room with everything that may cover the day being asked about.
type Schedule struct {
	Room        *room.Room
	Bookings    []*booking.Booking
	Stays       []*stay.Stay
	Maintenance []*room.MaintenanceSchedule
}

type RoomDay struct {
	RoomID          uuid.UUID
	RoomNumber      string
	RoomType        string
	CurrentStatus   room.Status
	ScheduledStatus ScheduledStatus
	BookingID       *uuid.UUID
	StayID          *uuid.UUID
	MaintenanceID   *uuid.UUID
	GuestName       string
}

// OnDate resolves the scheduled status in priority order: active stay, maintenance window,
// blocking persisted status, booking, then available.
func OnDate(s Schedule, date calendar.Date) RoomDay {
	day := RoomDay{
		RoomID:        s.Room.ID(),
		RoomNumber:    s.Room.Number(),
		RoomType:      s.Room.Type(),
		CurrentStatus: s.Room.Status(),
	}

	for _, st := range s.Stays {
		if st.IsActive() && st.Period().Covers(date) {
			id := st.ID()
			day.ScheduledStatus = ScheduledOccupied
			day.StayID = &id
			day.BookingID = st.BookingID()
			day.GuestName = st.Guest().Name()
			return day
		}
	}

	for _, m := range s.Maintenance {
		if m.IsActive() && m.Period().Covers(date) {
			id := m.ID()
			day.ScheduledStatus = ScheduledMaintenance
			day.MaintenanceID = &id
			return day
		}
	}

	switch s.Room.Status() {
	case room.StatusCleaning:
		day.ScheduledStatus = ScheduledCleaning
		return day
	case room.StatusMaintenance:
		day.ScheduledStatus = ScheduledMaintenance
		return day
	case room.StatusOutOfService:
		day.ScheduledStatus = ScheduledOutOfService
		return day
	}

	for _, b := range s.Bookings {
		if b.BlocksCalendar() && b.Period().Covers(date) {
			id := b.ID()
			day.ScheduledStatus = ScheduledBooked
			day.BookingID = &id
			day.GuestName = b.Guest().Name()
			return day
		}
	}

	day.ScheduledStatus = ScheduledAvailable
	return day
}

type DaySummary struct {
	Date           calendar.Date
	BookingCount   int
	OccupancyRate  float64
	AvailableRooms int
}

// MonthSummary counts, for each day of the month, the bookings and stays covering it.
// A booking that became a stay is counted once, through the stay. Checked-out stays still
// count for the days they covered. Occupancy is the share of rooms in use.
func MonthSummary(schedules []Schedule, year int, month time.Month) []DaySummary {
	days := calendar.DaysIn(year, month)
	total := len(schedules)
	out := make([]DaySummary, 0, days)

	for d := 1; d <= days; d++ {
		date := calendar.NewDate(year, month, d)
		summary := DaySummary{Date: date}
		occupied := 0

		for _, s := range schedules {
			n := coveringCount(s, date)
			summary.BookingCount += n
			if n > 0 {
				occupied++
			}
		}

		summary.AvailableRooms = total - occupied
		if total > 0 {
			summary.OccupancyRate = float64(occupied) / float64(total)
		}
		out = append(out, summary)
	}
	return out
}

func coveringCount(s Schedule, date calendar.Date) int {
	n := 0
	for _, st := range s.Stays {
		if st.Period().Covers(date) {
			n++
		}
	}
	for _, b := range s.Bookings {
		if b.BlocksCalendar() && b.Period().Covers(date) {
			n++
		}
	}
	return n
}
