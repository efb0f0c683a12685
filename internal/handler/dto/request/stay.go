package request

import (
	"strings"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type WalkInRequest struct {
	Room                string        `json:"room" binding:"required"`
	GuestName           string        `json:"guest_name" binding:"required"`
	GuestPhone          string        `json:"guest_phone"`
	GuestEmail          string        `json:"guest_email"`
	CheckIn             calendar.Date `json:"check_in"`
	CheckOut            calendar.Date `json:"check_out"`
	GuestCount          int           `json:"guest_count" binding:"min=0"`
	IDProof             string        `json:"id_proof"`
	AdvancePayment      int64         `json:"advance_payment" binding:"min=0"`
	PaymentMode         string        `json:"payment_mode"`
	Notes               string        `json:"notes"`
	OverrideUnavailable bool          `json:"override_unavailable"`
	OverrideReason      string        `json:"override_reason"`
}

func (r WalkInRequest) ToInput() (commands.WalkInInput, error) {
	ref, err := room.ParseRef(r.Room)
	if err != nil {
		return commands.WalkInInput{}, err
	}
	return commands.WalkInInput{
		Room:                ref,
		GuestName:           strings.TrimSpace(r.GuestName),
		GuestPhone:          strings.TrimSpace(r.GuestPhone),
		GuestEmail:          strings.TrimSpace(r.GuestEmail),
		CheckIn:             r.CheckIn,
		CheckOut:            r.CheckOut,
		GuestCount:          r.GuestCount,
		IDProof:             strings.TrimSpace(r.IDProof),
		AdvancePayment:      r.AdvancePayment,
		PaymentMode:         strings.TrimSpace(r.PaymentMode),
		Notes:               strings.TrimSpace(r.Notes),
		OverrideUnavailable: r.OverrideUnavailable,
		OverrideReason:      strings.TrimSpace(r.OverrideReason),
	}, nil
}

type LinkOrderRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	// Amount is optional; the order's own amount is used when omitted.
	Amount *int64 `json:"amount,omitempty" binding:"omitempty,min=0"`
}

func (r LinkOrderRequest) ToInput(stayID uuid.UUID) commands.LinkOrderInput {
	return commands.LinkOrderInput{
		StayID:  stayID,
		OrderID: r.OrderID,
		Amount:  r.Amount,
	}
}

type LineItemRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"min=0"`
}

type CheckoutRequest struct {
	FinalPayment      int64             `json:"final_payment" binding:"min=0"`
	PaymentMode       string            `json:"payment_mode"`
	AdditionalCharges []LineItemRequest `json:"additional_charges" binding:"dive"`
	Discounts         []LineItemRequest `json:"discounts" binding:"dive"`
	Notes             string            `json:"notes"`
}

func (r CheckoutRequest) ToInput(stayID uuid.UUID) commands.CheckoutInput {
	return commands.CheckoutInput{
		StayID:            stayID,
		FinalPayment:      r.FinalPayment,
		PaymentMode:       strings.TrimSpace(r.PaymentMode),
		AdditionalCharges: lineItems(r.AdditionalCharges),
		Discounts:         lineItems(r.Discounts),
		Notes:             strings.TrimSpace(r.Notes),
	}
}

func lineItems(in []LineItemRequest) []commands.LineItemInput {
	out := make([]commands.LineItemInput, 0, len(in))
	for _, it := range in {
		out = append(out, commands.LineItemInput{
			Description: strings.TrimSpace(it.Description),
			Amount:      it.Amount,
		})
	}
	return out
}
