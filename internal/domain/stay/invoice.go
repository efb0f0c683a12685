package stay

import (
	"time"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/money"

	"github.com/google/uuid"
)

// Invoice is never stored. It is rebuilt from the stay and its ledger every time it is asked for.
type Invoice struct {
	StayID            uuid.UUID
	BookingID         *uuid.UUID
	RoomNumber        string
	GuestName         string
	Period            calendar.DateRange
	Nights            int
	Tariff            money.Money
	Ledger            []LedgerEntry
	AdditionalCharges []LineItem
	Discounts         []LineItem
	RoomCharges       money.Money
	FoodCharges       money.Money
	AdditionalTotal   money.Money
	DiscountTotal     money.Money
	Total             money.Money
	AdvancePayment    money.Money
	FinalPayment      money.Money
	TotalPaid         money.Money
	Balance           money.Money
	BillingComplete   bool
	Status            Status
	CheckedOutAt      *time.Time
}

func BuildInvoice(s *Stay) Invoice {
	roomCharges := s.tariff.Times(s.Nights())
	food := s.Totals().FoodTotal
	additional := sumItems(s.charges)
	discount := sumItems(s.discounts)
	total := money.Sum(roomCharges, food, additional).Sub(discount)
	paid := s.advance.Amount.Add(s.final.Amount)
	balance := total.Sub(paid)

	return Invoice{
		StayID:            s.id,
		BookingID:         s.bookingID,
		RoomNumber:        s.roomNumber,
		GuestName:         s.guest.Name(),
		Period:            s.period,
		Nights:            s.Nights(),
		Tariff:            s.tariff,
		Ledger:            s.ledger,
		AdditionalCharges: s.charges,
		Discounts:         s.discounts,
		RoomCharges:       roomCharges,
		FoodCharges:       food,
		AdditionalTotal:   additional,
		DiscountTotal:     discount,
		Total:             total,
		AdvancePayment:    s.advance.Amount,
		FinalPayment:      s.final.Amount,
		TotalPaid:         paid,
		Balance:           balance,
		BillingComplete:   !balance.IsPositive(),
		Status:            s.status,
		CheckedOutAt:      s.checkedOutAt,
	}
}

func sumItems(items []LineItem) money.Money {
	total := money.Zero()
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
