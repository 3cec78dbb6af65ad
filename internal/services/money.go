package services

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the display format of the ISO currency code,
// e.g. ₹52,000.00 for INR
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	// money.New is the only way to get a non-nil currency
	cur := *money.New(0, currencyCode).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
