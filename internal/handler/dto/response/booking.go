package response

import (
	"room-stay-engine/internal/usecase/queries"
)

type BookingResponse struct {
	*queries.BookingView
	// Replayed is set when an Idempotency-Key matched an earlier request.
	Replayed bool `json:"replayed,omitempty"`
}

func FromBookingView(v *queries.BookingView, replayed bool) *BookingResponse {
	return &BookingResponse{BookingView: v, Replayed: replayed}
}

// ConflictDetail is the error detail of a rejected booking or check-in.
type ConflictDetail struct {
	Conflicts []queries.ConflictView `json:"conflicts"`
}

// OrderLinkedDetail repeats the ledger totals of the stay the order already belongs to.
type OrderLinkedDetail struct {
	Totals queries.LedgerTotalsView `json:"totals"`
}
