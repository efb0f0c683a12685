package stay

import (
	"errors"
	"strings"
	"time"

	"room-stay-engine/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNotActive          = errors.New("stay is not checked in")
	ErrOrderAlreadyLinked = errors.New("order is already linked to this stay")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrEmptyDescription   = errors.New("line item description is required")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrIDProofTooLong     = errors.New("id proof is too long (max 128 characters)")
	ErrInvalidStatus      = errors.New("invalid stay status")
	ErrMissingOrder       = errors.New("order id is required")
	ErrPaymentModeMissing = errors.New("payment mode is required when a payment is recorded")
)

const MaxIDProofLength = 128

type Status string

const (
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusCheckedIn, StatusCheckedOut:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type PaymentMode string

const (
	PaymentNone         PaymentMode = ""
	PaymentCash         PaymentMode = "cash"
	PaymentCard         PaymentMode = "card"
	PaymentUPI          PaymentMode = "upi"
	PaymentBankTransfer PaymentMode = "bank-transfer"
	PaymentOther        PaymentMode = "other"
)

func ParsePaymentMode(s string) (PaymentMode, error) {
	switch m := PaymentMode(strings.TrimSpace(s)); m {
	case PaymentNone, PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer, PaymentOther:
		return m, nil
	default:
		return "", ErrInvalidPaymentMode
	}
}

// Payment is an amount received together with how it was paid.
type Payment struct {
	Amount money.Money
	Mode   PaymentMode
}

func NewPayment(amount int64, mode string) (Payment, error) {
	m, err := ParsePaymentMode(mode)
	if err != nil {
		return Payment{}, err
	}
	a, err := money.NewNonNegative(amount)
	if err != nil {
		return Payment{}, ErrNegativeAmount
	}
	if a.IsPositive() && m == PaymentNone {
		return Payment{}, ErrPaymentModeMissing
	}
	return Payment{Amount: a, Mode: m}, nil
}

// LedgerEntry is one external order billed to the stay.
type LedgerEntry struct {
	OrderID  uuid.UUID
	Amount   money.Money
	LinkedAt time.Time
}

// LineItem is an additional charge or a discount entered at the desk.
type LineItem struct {
	Description string
	Amount      money.Money
}

func NewLineItem(description string, amount int64) (LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return LineItem{}, ErrEmptyDescription
	}
	a, err := money.NewNonNegative(amount)
	if err != nil {
		return LineItem{}, ErrNegativeAmount
	}
	return LineItem{Description: description, Amount: a}, nil
}

// LedgerTotals is the running view of the ledger returned after linking an order.
type LedgerTotals struct {
	OrderCount int
	FoodTotal  money.Money
}
