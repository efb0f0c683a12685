package request

import (
	"strings"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/usecase/commands"
	"room-stay-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// Room accepts either the room id or its number.
type CreateBookingRequest struct {
	Room                string        `json:"room" binding:"required"`
	GuestName           string        `json:"guest_name" binding:"required"`
	GuestPhone          string        `json:"guest_phone"`
	GuestEmail          string        `json:"guest_email"`
	CheckIn             calendar.Date `json:"check_in"`
	CheckOut            calendar.Date `json:"check_out"`
	GuestCount          int           `json:"guest_count" binding:"min=0"`
	Notes               string        `json:"notes"`
	OverrideUnavailable bool          `json:"override_unavailable"`
	OverrideReason      string        `json:"override_reason"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	ref, err := room.ParseRef(r.Room)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		Room:                ref,
		GuestName:           strings.TrimSpace(r.GuestName),
		GuestPhone:          strings.TrimSpace(r.GuestPhone),
		GuestEmail:          strings.TrimSpace(r.GuestEmail),
		CheckIn:             r.CheckIn,
		CheckOut:            r.CheckOut,
		GuestCount:          r.GuestCount,
		Notes:               strings.TrimSpace(r.Notes),
		OverrideUnavailable: r.OverrideUnavailable,
		OverrideReason:      strings.TrimSpace(r.OverrideReason),
	}, nil
}

type ValidateBookingRequest struct {
	Room                string        `json:"room" binding:"required"`
	CheckIn             calendar.Date `json:"check_in"`
	CheckOut            calendar.Date `json:"check_out"`
	ExcludeBookingID    *uuid.UUID    `json:"exclude_booking_id,omitempty"`
	OverrideUnavailable bool          `json:"override_unavailable"`
}

func (r ValidateBookingRequest) ToInput() (queries.ValidateInput, error) {
	ref, err := room.ParseRef(r.Room)
	if err != nil {
		return queries.ValidateInput{}, err
	}
	return queries.ValidateInput{
		Room:                ref,
		CheckIn:             r.CheckIn,
		CheckOut:            r.CheckOut,
		ExcludeBookingID:    r.ExcludeBookingID,
		OverrideUnavailable: r.OverrideUnavailable,
	}, nil
}

type ConvertBookingRequest struct {
	IDProof        string `json:"id_proof"`
	AdvancePayment int64  `json:"advance_payment" binding:"min=0"`
	PaymentMode    string `json:"payment_mode"`
	Notes          string `json:"notes"`
}

func (r ConvertBookingRequest) ToInput(bookingID uuid.UUID) commands.ConvertInput {
	return commands.ConvertInput{
		BookingID:      bookingID,
		IDProof:        strings.TrimSpace(r.IDProof),
		AdvancePayment: r.AdvancePayment,
		PaymentMode:    strings.TrimSpace(r.PaymentMode),
		Notes:          strings.TrimSpace(r.Notes),
	}
}
