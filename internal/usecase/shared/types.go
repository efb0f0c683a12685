package shared

import (
	"time"

	"room-stay-engine/internal/domain/calendar"

	"github.com/google/uuid"
)

// OrderSnapshot is the part of a point-of-sale order this service reads.
type OrderSnapshot struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	Amount          int64
	Status          string
	PaymentStatus   string
	LinkedToStayID  *uuid.UUID
	BilledViaStayID *uuid.UUID
}

func (o *OrderSnapshot) IsBilled() bool {
	return o.BilledViaStayID != nil
}

// LinkedElsewhere reports whether the order already belongs to a stay other than stayID.
func (o *OrderSnapshot) LinkedElsewhere(stayID uuid.UUID) bool {
	return o.LinkedToStayID != nil && *o.LinkedToStayID != stayID
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

const (
	ClaimKindBooking = "booking"
	ClaimKindStay    = "stay"
)

// ClaimOwner is the booking or stay holding a set of room nights.
type ClaimOwner struct {
	Kind string
	ID   uuid.UUID
}

func BookingClaim(id uuid.UUID) ClaimOwner { return ClaimOwner{Kind: ClaimKindBooking, ID: id} }
func StayClaim(id uuid.UUID) ClaimOwner    { return ClaimOwner{Kind: ClaimKindStay, ID: id} }

// NightClaim is one room night and the owner holding it.
type NightClaim struct {
	Night calendar.Date
	Owner ClaimOwner
}

// Notification topics written to the outbox.
const (
	TopicBookingCreated   = "booking_created"
	TopicBookingCancelled = "booking_cancelled"
	TopicGuestCheckedIn   = "guest_checked_in"
	TopicGuestCheckedOut  = "guest_checked_out"
)
