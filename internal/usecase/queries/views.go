package queries

import (
	"time"

	"room-stay-engine/internal/domain/availability"
	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID           uuid.UUID  `json:"id"`
	PropertyID   uuid.UUID  `json:"property_id"`
	Number       string     `json:"number"`
	Type         string     `json:"type"`
	Floor        string     `json:"floor"`
	Capacity     int        `json:"capacity"`
	Tariff       int64      `json:"tariff"`
	Amenities    []string   `json:"amenities"`
	Status       string     `json:"status"`
	ActiveStayID *uuid.UUID `json:"active_stay_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MaintenanceView struct {
	ID        uuid.UUID     `json:"id"`
	RoomID    uuid.UUID     `json:"room_id"`
	StartDate calendar.Date `json:"start_date"`
	EndDate   calendar.Date `json:"end_date"`
	Reason    string        `json:"reason"`
	Active    bool          `json:"active"`
	CreatedBy uuid.UUID     `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
}

type BookingView struct {
	ID             uuid.UUID     `json:"id"`
	PropertyID     uuid.UUID     `json:"property_id"`
	RoomID         uuid.UUID     `json:"room_id"`
	RoomNumber     string        `json:"room_number"`
	GuestName      string        `json:"guest_name"`
	GuestPhone     string        `json:"guest_phone,omitempty"`
	GuestEmail     string        `json:"guest_email,omitempty"`
	CheckIn        calendar.Date `json:"check_in"`
	CheckOut       calendar.Date `json:"check_out"`
	Nights         int           `json:"nights"`
	GuestCount     int           `json:"guest_count"`
	Tariff         int64         `json:"tariff"`
	TotalEstimate  int64         `json:"total_estimate"`
	Status         string        `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	OverrideBy     *uuid.UUID    `json:"override_by,omitempty"`
	OverrideReason string        `json:"override_reason,omitempty"`
	StayID         *uuid.UUID    `json:"stay_id,omitempty"`
	CreatedBy      uuid.UUID     `json:"created_by"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type LedgerEntryView struct {
	OrderID  uuid.UUID `json:"order_id"`
	Amount   int64     `json:"amount"`
	LinkedAt time.Time `json:"linked_at"`
}

type LineItemView struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type StayView struct {
	ID                 uuid.UUID         `json:"id"`
	PropertyID         uuid.UUID         `json:"property_id"`
	RoomID             uuid.UUID         `json:"room_id"`
	RoomNumber         string            `json:"room_number"`
	BookingID          *uuid.UUID        `json:"booking_id,omitempty"`
	GuestName          string            `json:"guest_name"`
	GuestPhone         string            `json:"guest_phone,omitempty"`
	GuestEmail         string            `json:"guest_email,omitempty"`
	IDProof            string            `json:"id_proof,omitempty"`
	CheckIn            calendar.Date     `json:"check_in"`
	CheckOut           calendar.Date     `json:"check_out"`
	Nights             int               `json:"nights"`
	Tariff             int64             `json:"tariff"`
	Ledger             []LedgerEntryView `json:"ledger"`
	AdditionalCharges  []LineItemView    `json:"additional_charges"`
	Discounts          []LineItemView    `json:"discounts"`
	AdvancePayment     int64             `json:"advance_payment"`
	AdvancePaymentMode string            `json:"advance_payment_mode,omitempty"`
	FinalPayment       int64             `json:"final_payment"`
	FinalPaymentMode   string            `json:"final_payment_mode,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	Status             string            `json:"status"`
	BillingComplete    bool              `json:"billing_complete"`
	OverrideBy         *uuid.UUID        `json:"override_by,omitempty"`
	OverrideReason     string            `json:"override_reason,omitempty"`
	CheckedOutAt       *time.Time        `json:"checked_out_at,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type LedgerTotalsView struct {
	StayID     uuid.UUID `json:"stay_id"`
	OrderCount int       `json:"order_count"`
	FoodTotal  int64     `json:"food_total"`
}

type InvoiceView struct {
	StayID            uuid.UUID         `json:"stay_id"`
	BookingID         *uuid.UUID        `json:"booking_id,omitempty"`
	RoomNumber        string            `json:"room_number"`
	GuestName         string            `json:"guest_name"`
	CheckIn           calendar.Date     `json:"check_in"`
	CheckOut          calendar.Date     `json:"check_out"`
	Nights            int               `json:"nights"`
	Tariff            int64             `json:"tariff"`
	Ledger            []LedgerEntryView `json:"ledger"`
	AdditionalCharges []LineItemView    `json:"additional_charges"`
	Discounts         []LineItemView    `json:"discounts"`
	RoomCharges       int64             `json:"room_charges"`
	FoodCharges       int64             `json:"food_charges"`
	AdditionalTotal   int64             `json:"additional_total"`
	DiscountTotal     int64             `json:"discount_total"`
	Total             int64             `json:"total"`
	AdvancePayment    int64             `json:"advance_payment"`
	FinalPayment      int64             `json:"final_payment"`
	TotalPaid         int64             `json:"total_paid"`
	Balance           int64             `json:"balance"`
	BillingComplete   bool              `json:"billing_complete"`
	Status            string            `json:"status"`
	CheckedOutAt      *time.Time        `json:"checked_out_at,omitempty"`
}

type ConflictView struct {
	Source    string        `json:"source"`
	ID        uuid.UUID     `json:"id"`
	GuestName string        `json:"guest_name,omitempty"`
	CheckIn   calendar.Date `json:"check_in"`
	CheckOut  calendar.Date `json:"check_out"`
	Reason    string        `json:"reason"`
}

type ValidationView struct {
	Available     bool           `json:"available"`
	RoomID        uuid.UUID      `json:"room_id"`
	RoomNumber    string         `json:"room_number"`
	RoomStatus    string         `json:"room_status"`
	RoomBlocked   bool           `json:"room_blocked"`
	Nights        int            `json:"nights"`
	TotalEstimate int64          `json:"total_estimate"`
	Conflicts     []ConflictView `json:"conflicts"`
}

type RoomAvailabilityView struct {
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      string     `json:"room_number"`
	RoomType        string     `json:"room_type"`
	CurrentStatus   string     `json:"current_status"`
	ScheduledStatus string     `json:"scheduled_status"`
	BookingID       *uuid.UUID `json:"booking_id,omitempty"`
	StayID          *uuid.UUID `json:"stay_id,omitempty"`
	MaintenanceID   *uuid.UUID `json:"maintenance_id,omitempty"`
	GuestName       string     `json:"guest_name,omitempty"`
}

type DaySummaryView struct {
	Date           calendar.Date `json:"date"`
	BookingCount   int           `json:"booking_count"`
	OccupancyRate  float64       `json:"occupancy_rate"`
	AvailableRooms int           `json:"available_rooms"`
}

type MonthSummaryView struct {
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	TotalRooms int              `json:"total_rooms"`
	Days       []DaySummaryView `json:"days"`
}

// The constructors below are shared with the command side, which answers writes
// with the same views the read side serves.

func RoomViewFrom(r *room.Room) *RoomView {
	amenities := r.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return &RoomView{
		ID:           r.ID(),
		PropertyID:   r.PropertyID(),
		Number:       r.Number(),
		Type:         r.Type(),
		Floor:        r.Floor(),
		Capacity:     r.Capacity(),
		Tariff:       r.Tariff().Amount(),
		Amenities:    amenities,
		Status:       r.Status().String(),
		ActiveStayID: r.ActiveStayID(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func MaintenanceViewFrom(m *room.MaintenanceSchedule) *MaintenanceView {
	return &MaintenanceView{
		ID:        m.ID(),
		RoomID:    m.RoomID(),
		StartDate: m.Period().Start,
		EndDate:   m.Period().End,
		Reason:    m.Reason(),
		Active:    m.IsActive(),
		CreatedBy: m.CreatedBy(),
		CreatedAt: m.CreatedAt(),
	}
}

func BookingViewFrom(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:            b.ID(),
		PropertyID:    b.PropertyID(),
		RoomID:        b.RoomID(),
		RoomNumber:    b.RoomNumber(),
		GuestName:     b.Guest().Name(),
		GuestPhone:    b.Guest().Phone(),
		GuestEmail:    b.Guest().Email(),
		CheckIn:       b.Period().Start,
		CheckOut:      b.Period().End,
		Nights:        b.Nights(),
		GuestCount:    b.GuestCount(),
		Tariff:        b.Tariff().Amount(),
		TotalEstimate: b.TotalEstimate().Amount(),
		Status:        b.Status().String(),
		Notes:         b.Notes(),
		StayID:        b.StayID(),
		CreatedBy:     b.CreatedBy(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	if o := b.Override(); o != nil {
		by := o.By
		v.OverrideBy = &by
		v.OverrideReason = o.Reason
	}
	return v
}

func StayViewFrom(s *stay.Stay) *StayView {
	v := &StayView{
		ID:                 s.ID(),
		PropertyID:         s.PropertyID(),
		RoomID:             s.RoomID(),
		RoomNumber:         s.RoomNumber(),
		BookingID:          s.BookingID(),
		GuestName:          s.Guest().Name(),
		GuestPhone:         s.Guest().Phone(),
		GuestEmail:         s.Guest().Email(),
		IDProof:            s.IDProof(),
		CheckIn:            s.Period().Start,
		CheckOut:           s.Period().End,
		Nights:             s.Nights(),
		Tariff:             s.Tariff().Amount(),
		Ledger:             ledgerViews(s.Ledger()),
		AdditionalCharges:  lineItemViews(s.AdditionalCharges()),
		Discounts:          lineItemViews(s.Discounts()),
		AdvancePayment:     s.Advance().Amount.Amount(),
		AdvancePaymentMode: string(s.Advance().Mode),
		FinalPayment:       s.Final().Amount.Amount(),
		FinalPaymentMode:   string(s.Final().Mode),
		Notes:              s.Notes(),
		Status:             s.Status().String(),
		BillingComplete:    s.BillingComplete(),
		CheckedOutAt:       s.CheckedOutAt(),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
	if o := s.Override(); o != nil {
		by := o.By
		v.OverrideBy = &by
		v.OverrideReason = o.Reason
	}
	return v
}

func LedgerTotalsViewFrom(stayID uuid.UUID, t stay.LedgerTotals) *LedgerTotalsView {
	return &LedgerTotalsView{
		StayID:     stayID,
		OrderCount: t.OrderCount,
		FoodTotal:  t.FoodTotal.Amount(),
	}
}

func InvoiceViewFrom(inv stay.Invoice) *InvoiceView {
	return &InvoiceView{
		StayID:            inv.StayID,
		BookingID:         inv.BookingID,
		RoomNumber:        inv.RoomNumber,
		GuestName:         inv.GuestName,
		CheckIn:           inv.Period.Start,
		CheckOut:          inv.Period.End,
		Nights:            inv.Nights,
		Tariff:            inv.Tariff.Amount(),
		Ledger:            ledgerViews(inv.Ledger),
		AdditionalCharges: lineItemViews(inv.AdditionalCharges),
		Discounts:         lineItemViews(inv.Discounts),
		RoomCharges:       inv.RoomCharges.Amount(),
		FoodCharges:       inv.FoodCharges.Amount(),
		AdditionalTotal:   inv.AdditionalTotal.Amount(),
		DiscountTotal:     inv.DiscountTotal.Amount(),
		Total:             inv.Total.Amount(),
		AdvancePayment:    inv.AdvancePayment.Amount(),
		FinalPayment:      inv.FinalPayment.Amount(),
		TotalPaid:         inv.TotalPaid.Amount(),
		Balance:           inv.Balance.Amount(),
		BillingComplete:   inv.BillingComplete,
		Status:            inv.Status.String(),
		CheckedOutAt:      inv.CheckedOutAt,
	}
}

func ConflictViewsFrom(conflicts []conflict.Conflict) []ConflictView {
	out := make([]ConflictView, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, ConflictView{
			Source:    string(c.Source),
			ID:        c.ID,
			GuestName: c.GuestName,
			CheckIn:   c.Range.Start,
			CheckOut:  c.Range.End,
			Reason:    c.Reason,
		})
	}
	return out
}

func RoomAvailabilityViewFrom(d availability.RoomDay) *RoomAvailabilityView {
	return &RoomAvailabilityView{
		RoomID:          d.RoomID,
		RoomNumber:      d.RoomNumber,
		RoomType:        d.RoomType,
		CurrentStatus:   d.CurrentStatus.String(),
		ScheduledStatus: string(d.ScheduledStatus),
		BookingID:       d.BookingID,
		StayID:          d.StayID,
		MaintenanceID:   d.MaintenanceID,
		GuestName:       d.GuestName,
	}
}

func ledgerViews(entries []stay.LedgerEntry) []LedgerEntryView {
	out := make([]LedgerEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, LedgerEntryView{OrderID: e.OrderID, Amount: e.Amount.Amount(), LinkedAt: e.LinkedAt})
	}
	return out
}

func lineItemViews(items []stay.LineItem) []LineItemView {
	out := make([]LineItemView, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemView{Description: it.Description, Amount: it.Amount.Amount()})
	}
	return out
}
