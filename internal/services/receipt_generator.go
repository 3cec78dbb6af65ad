package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
)

const (
	ReceiptWidth        = 40
	FirstReceiptNumber  = 1000
	receiptTimeLayout   = "02-01-2006 15:04:05"
	receiptNumberFormat = "RCP-%04d"
)

// ReceiptData is everything printed on a transaction receipt.
// AccountNumber must already be masked.
type ReceiptData struct {
	AccountNumber   string
	HolderName      string
	TransactionType models.TransactionType
	Amount          decimal.Decimal
	Balance         decimal.Decimal
}

// ReceiptGenerator renders fixed-width receipt text. Receipt numbers are
// sequential per generator, starting at FirstReceiptNumber.
type ReceiptGenerator struct {
	bankName string
	tagline  string
	currency string
	next     atomic.Int64
	now      func() time.Time
}

func NewReceiptGenerator(policy config.PolicyConfig, now func() time.Time) *ReceiptGenerator {
	if now == nil {
		now = time.Now
	}

	g := &ReceiptGenerator{
		bankName: policy.BankName,
		tagline:  policy.BankTagline,
		currency: policy.Currency,
		now:      now,
	}
	g.next.Store(FirstReceiptNumber)
	return g
}

// NextReceiptNumber reserves and returns the next receipt number
func (g *ReceiptGenerator) NextReceiptNumber() string {
	return fmt.Sprintf(receiptNumberFormat, g.next.Add(1)-1)
}

func (g *ReceiptGenerator) Generate(data ReceiptData) string {
	var b strings.Builder

	b.WriteString("\n")
	g.rule(&b)
	g.center(&b, g.bankName)
	g.center(&b, g.tagline)
	g.center(&b, "TRANSACTION RECEIPT")
	g.rule(&b)

	fmt.Fprintf(&b, "Receipt #: %s\n", g.NextReceiptNumber())
	fmt.Fprintf(&b, "Date/Time: %s\n", g.now().Format(receiptTimeLayout))
	fmt.Fprintf(&b, "Account: %s\n", data.AccountNumber)
	fmt.Fprintf(&b, "Name: %s\n", data.HolderName)
	g.rule(&b)

	fmt.Fprintf(&b, "Transaction: %s\n", data.TransactionType.DisplayName())
	fmt.Fprintf(&b, "Amount: %s\n", FormatMoney(data.Amount, g.currency))
	fmt.Fprintf(&b, "Balance: %s\n", FormatMoney(data.Balance, g.currency))
	g.rule(&b)

	g.center(&b, "Thank You!")
	g.center(&b, "Please keep this receipt")
	g.rule(&b)

	return b.String()
}

// GenerateBalance renders a balance inquiry slip; it does not consume a
// receipt number
func (g *ReceiptGenerator) GenerateBalance(accountNumber, holderName string, balance decimal.Decimal) string {
	var b strings.Builder

	b.WriteString("\n")
	g.rule(&b)
	g.center(&b, g.bankName)
	g.center(&b, "BALANCE INQUIRY")
	g.rule(&b)

	fmt.Fprintf(&b, "Date/Time: %s\n", g.now().Format(receiptTimeLayout))
	fmt.Fprintf(&b, "Account: %s\n", accountNumber)
	fmt.Fprintf(&b, "Name: %s\n", holderName)
	g.rule(&b)

	b.WriteString("Available Balance:\n")
	fmt.Fprintf(&b, "  %s\n", FormatMoney(balance, g.currency))
	g.rule(&b)

	g.center(&b, "Thank You!")
	g.rule(&b)

	return b.String()
}

func (g *ReceiptGenerator) rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("=", ReceiptWidth))
	b.WriteString("\n")
}

func (g *ReceiptGenerator) center(b *strings.Builder, text string) {
	if pad := (ReceiptWidth - len([]rune(text))) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(text)
	b.WriteString("\n")
}
