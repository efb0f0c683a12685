package converter

import (
	"encoding/json"
	"time"

	"room-stay-engine/internal/domain/guest"
	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/errs"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// JSONB documents stored on the stays row.
type ledgerDoc struct {
	OrderID  uuid.UUID `json:"order_id"`
	Amount   int64     `json:"amount"`
	LinkedAt time.Time `json:"linked_at"`
}

type lineItemDoc struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

func StayToInfra(s *stay.Stay) (pgq.CreateStayParams, error) {
	ledger, err := LedgerToInfra(s.Ledger())
	if err != nil {
		return pgq.CreateStayParams{}, err
	}
	charges, err := lineItemsToInfra(s.AdditionalCharges())
	if err != nil {
		return pgq.CreateStayParams{}, err
	}
	discounts, err := lineItemsToInfra(s.Discounts())
	if err != nil {
		return pgq.CreateStayParams{}, err
	}

	params := pgq.CreateStayParams{
		ID:                 s.ID(),
		PropertyID:         s.PropertyID(),
		RoomID:             s.RoomID(),
		RoomNumber:         s.RoomNumber(),
		BookingID:          pgconv.UUIDPtrToPgtype(s.BookingID()),
		GuestName:          s.Guest().Name(),
		GuestPhone:         s.Guest().Phone(),
		GuestEmail:         s.Guest().Email(),
		IDProof:            s.IDProof(),
		CheckIn:            DateToInfra(s.Period().Start),
		CheckOut:           DateToInfra(s.Period().End),
		Tariff:             s.Tariff().Amount(),
		Ledger:             ledger,
		AdditionalCharges:  charges,
		Discounts:          discounts,
		AdvancePayment:     s.Advance().Amount.Amount(),
		AdvancePaymentMode: string(s.Advance().Mode),
		Notes:              s.Notes(),
		Status:             s.Status().String(),
		CreatedBy:          s.CreatedBy(),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt()),
	}
	params.OverrideBy, params.OverrideReason = overrideToInfra(s.Override())
	return params, nil
}

func StayCheckoutToInfra(s *stay.Stay) (pgq.CheckoutStayParams, error) {
	charges, err := lineItemsToInfra(s.AdditionalCharges())
	if err != nil {
		return pgq.CheckoutStayParams{}, err
	}
	discounts, err := lineItemsToInfra(s.Discounts())
	if err != nil {
		return pgq.CheckoutStayParams{}, err
	}
	return pgq.CheckoutStayParams{
		ID:                s.ID(),
		AdditionalCharges: charges,
		Discounts:         discounts,
		FinalPayment:      s.Final().Amount.Amount(),
		FinalPaymentMode:  string(s.Final().Mode),
		Notes:             s.Notes(),
		Status:            s.Status().String(),
		BillingComplete:   s.BillingComplete(),
		CheckedOutAt:      pgconv.TimePtrToPgtype(s.CheckedOutAt()),
	}, nil
}

func LedgerToInfra(entries []stay.LedgerEntry) ([]byte, error) {
	docs := make([]ledgerDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, ledgerDoc{OrderID: e.OrderID, Amount: e.Amount.Amount(), LinkedAt: e.LinkedAt})
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, errs.Wrap(err, "encode ledger")
	}
	return b, nil
}

func lineItemsToInfra(items []stay.LineItem) ([]byte, error) {
	docs := make([]lineItemDoc, 0, len(items))
	for _, it := range items {
		docs = append(docs, lineItemDoc{Description: it.Description, Amount: it.Amount.Amount()})
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, errs.Wrap(err, "encode line items")
	}
	return b, nil
}

func StayFromInfra(row pgq.Stay) (*stay.Stay, error) {
	var ledger []ledgerDoc
	if err := decodeDoc(row.Ledger, &ledger); err != nil {
		return nil, errs.Wrapf(err, "decode ledger of stay %s", row.ID)
	}
	var charges, discounts []lineItemDoc
	if err := decodeDoc(row.AdditionalCharges, &charges); err != nil {
		return nil, errs.Wrapf(err, "decode additional charges of stay %s", row.ID)
	}
	if err := decodeDoc(row.Discounts, &discounts); err != nil {
		return nil, errs.Wrapf(err, "decode discounts of stay %s", row.ID)
	}

	entries := make([]stay.LedgerEntry, 0, len(ledger))
	for _, d := range ledger {
		entries = append(entries, stay.LedgerEntry{OrderID: d.OrderID, Amount: money.New(d.Amount), LinkedAt: d.LinkedAt})
	}

	return stay.Reconstruct(stay.Snapshot{
		ID:              row.ID,
		PropertyID:      row.PropertyID,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		BookingID:       pgconv.UUIDPtrFromPgtype(row.BookingID),
		Guest:           guest.Reconstruct(row.GuestName, row.GuestPhone, row.GuestEmail),
		IDProof:         row.IDProof,
		Period:          rangeFromInfra(row.CheckIn, row.CheckOut),
		Tariff:          money.New(row.Tariff),
		Ledger:          entries,
		Charges:         lineItemsFromDocs(charges),
		Discounts:       lineItemsFromDocs(discounts),
		Advance:         stay.Payment{Amount: money.New(row.AdvancePayment), Mode: stay.PaymentMode(row.AdvancePaymentMode)},
		Final:           stay.Payment{Amount: money.New(row.FinalPayment), Mode: stay.PaymentMode(row.FinalPaymentMode)},
		Notes:           row.Notes,
		Status:          stay.Status(row.Status),
		BillingComplete: row.BillingComplete,
		Override:        overrideFromInfra(row.OverrideBy, row.OverrideReason),
		CheckedOutAt:    pgconv.TimePtrFromPgtype(row.CheckedOutAt),
		CreatedBy:       row.CreatedBy,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func StaysFromInfra(rows []pgq.Stay) ([]*stay.Stay, error) {
	out := make([]*stay.Stay, 0, len(rows))
	for _, row := range rows {
		s, err := StayFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeDoc(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func lineItemsFromDocs(docs []lineItemDoc) []stay.LineItem {
	out := make([]stay.LineItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, stay.LineItem{Description: d.Description, Amount: money.New(d.Amount)})
	}
	return out
}
