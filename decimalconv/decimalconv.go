// Package decimalconv converts monetary values to and from
// [github.com/shopspring/decimal] numbers, the representation used by ledger
// and database layers that store amounts in tokens.
package decimalconv

import (
	"fmt"

	"github.com/amur-wallet/money"
	"github.com/shopspring/decimal"
)

// FromDecimal converts a number of tokens to a monetary value.
// Every digit up to the precision of the currency is preserved,
// the remaining ones are rounded half to even.
func FromDecimal(tokens decimal.Decimal, curr *money.Currency) (money.Money, error) {
	m, err := money.ParseMoney(tokens.String(), curr)
	if err != nil {
		return money.Money{}, fmt.Errorf("converting decimal: %w", err)
	}
	return m, nil
}

// ToDecimal returns the exact number of tokens of m.
func ToDecimal(m money.Money) decimal.Decimal {
	return decimal.New(m.Coins(), -int32(m.Curr().Precision()))
}
