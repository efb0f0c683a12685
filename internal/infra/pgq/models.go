package pgq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Room struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	Number       string
	RoomType     string
	Floor        string
	Capacity     int32
	Tariff       int64
	Amenities    []string
	Status       string
	ActiveStayID pgtype.UUID
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type MaintenanceSchedule struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Reason    string
	Active    bool
	CreatedBy uuid.UUID
	CreatedAt pgtype.Timestamptz
}

type Booking struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	RoomID         uuid.UUID
	RoomNumber     string
	GuestName      string
	GuestPhone     string
	GuestEmail     string
	CheckIn        pgtype.Date
	CheckOut       pgtype.Date
	GuestCount     int32
	Tariff         int64
	Status         string
	Notes          string
	OverrideBy     pgtype.UUID
	OverrideReason pgtype.Text
	StayID         pgtype.UUID
	CreatedBy      uuid.UUID
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

// Stay keeps the ledger, additional charges and discounts as raw JSONB documents.
type Stay struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	RoomID             uuid.UUID
	RoomNumber         string
	BookingID          pgtype.UUID
	GuestName          string
	GuestPhone         string
	GuestEmail         string
	IDProof            string
	CheckIn            pgtype.Date
	CheckOut           pgtype.Date
	Tariff             int64
	Ledger             []byte
	AdditionalCharges  []byte
	Discounts          []byte
	AdvancePayment     int64
	AdvancePaymentMode string
	FinalPayment       int64
	FinalPaymentMode   string
	Notes              string
	Status             string
	BillingComplete    bool
	OverrideBy         pgtype.UUID
	OverrideReason     pgtype.Text
	CheckedOutAt       pgtype.Timestamptz
	CreatedBy          uuid.UUID
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type Order struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	Amount          int64
	Status          string
	PaymentStatus   string
	LinkedToStayID  pgtype.UUID
	BilledViaStayID pgtype.UUID
}

type RoomNightClaim struct {
	RoomID    uuid.UUID
	Night     pgtype.Date
	OwnerKind string
	OwnerID   uuid.UUID
}

type IdempotencyKey struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    pgtype.UUID
	ExpiresAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int32
	RunAt     pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}
