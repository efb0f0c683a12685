package money

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in the property's minor currency unit.
type Money struct {
	amount int64
}

func New(amount int64) Money {
	return Money{amount: amount}
}

func NewNonNegative(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func Zero() Money { return Money{} }

func (m Money) Amount() int64 { return m.amount }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) IsPositive() bool { return m.amount > 0 }
func (m Money) IsNegative() bool { return m.amount < 0 }

func Sum(values ...Money) Money {
	var total Money
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
