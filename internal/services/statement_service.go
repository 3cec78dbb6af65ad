package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatTXT  ExportFormat = "txt"
	ExportFormatHTML ExportFormat = "html"
)

const (
	statementTimeLayout = "2006-01-02 15:04:05"
	fileTimeLayout      = "20060102_150405"
)

var (
	ErrInvalidExportFormat = errors.New("invalid export format")
	ErrNilStatement        = errors.New("statement is required")
)

// ParseExportFormat accepts csv, txt or html in any case
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportFormatCSV, ExportFormatTXT, ExportFormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExportFormat, s)
	}
}

// StatementSource is the read-only view of an account a statement needs.
// *models.Account satisfies it.
type StatementSource interface {
	MaskedAccountNumber() string
	HolderName() string
	Type() models.AccountType
	Balance() decimal.Decimal
	TransactionHistory() []models.Transaction
}

type StatementService struct {
	currency string
	now      func() time.Time
	markdown goldmark.Markdown
}

func NewStatementService(policy config.PolicyConfig, now func() time.Time) *StatementService {
	if now == nil {
		now = time.Now
	}

	return &StatementService{
		currency: policy.Currency,
		now:      now,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// GenerateStatement snapshots source. The account number on the statement
// is the masked one.
func (s *StatementService) GenerateStatement(source StatementSource) *models.AccountStatement {
	history := source.TransactionHistory()
	closing := source.Balance()

	opening := closing
	if len(history) > 0 {
		opening = history[0].BalanceBefore()
	}

	return &models.AccountStatement{
		AccountNumber:  source.MaskedAccountNumber(),
		HolderName:     source.HolderName(),
		AccountType:    source.Type(),
		Currency:       s.currency,
		OpeningBalance: opening,
		ClosingBalance: closing,
		Transactions:   buildStatementTransactions(history),
		Summary:        calculateSummary(history),
		GeneratedAt:    s.now(),
	}
}

func buildStatementTransactions(history []models.Transaction) []models.StatementTransaction {
	out := make([]models.StatementTransaction, len(history))
	for i, tx := range history {
		out[i] = models.StatementTransaction{
			Sequence:        i + 1,
			Date:            tx.Timestamp,
			Description:     tx.Description(),
			TransactionType: tx.Type,
			Amount:          tx.Amount,
			RunningBalance:  tx.BalanceAfter,
			Reference:       tx.ID.String(),
		}
	}
	return out
}

func calculateSummary(history []models.Transaction) models.StatementSummary {
	summary := models.StatementSummary{
		TotalDeposits:     decimal.Zero,
		TotalWithdrawals:  decimal.Zero,
		TotalTransfersIn:  decimal.Zero,
		TotalTransfersOut: decimal.Zero,
		NetChange:         decimal.Zero,
		TransactionCount:  len(history),
	}

	for _, tx := range history {
		switch tx.Type {
		case models.TransactionTypeDeposit:
			summary.TotalDeposits = summary.TotalDeposits.Add(tx.Amount)
			summary.DepositCount++
		case models.TransactionTypeWithdrawal:
			summary.TotalWithdrawals = summary.TotalWithdrawals.Add(tx.Amount)
			summary.WithdrawalCount++
		case models.TransactionTypeTransferIn:
			summary.TotalTransfersIn = summary.TotalTransfersIn.Add(tx.Amount)
			summary.TransferCount++
		case models.TransactionTypeTransferOut:
			summary.TotalTransfersOut = summary.TotalTransfersOut.Add(tx.Amount)
			summary.TransferCount++
		}
	}

	summary.NetChange = summary.TotalDeposits.
		Add(summary.TotalTransfersIn).
		Sub(summary.TotalWithdrawals).
		Sub(summary.TotalTransfersOut)

	return summary
}

// Export writes statement to w in the given format
func (s *StatementService) Export(statement *models.AccountStatement, format ExportFormat, w io.Writer) error {
	if statement == nil {
		return ErrNilStatement
	}

	switch format {
	case ExportFormatCSV:
		return writeStatementCSV(statement, w)
	case ExportFormatTXT:
		return s.writeStatementTXT(statement, w)
	case ExportFormatHTML:
		return s.writeStatementHTML(statement, w)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExportFormat, format)
	}
}

// ExportToFile writes the statement into dir as
// statement_<last4>_<yyyyMMdd_HHmmss>.<ext> and returns the path
func (s *StatementService) ExportToFile(statement *models.AccountStatement, format ExportFormat, dir string) (string, error) {
	if statement == nil {
		return "", ErrNilStatement
	}
	if _, err := ParseExportFormat(string(format)); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, StatementFilename(statement, format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create statement file: %w", err)
	}

	if err := s.Export(statement, format, f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to export statement: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close statement file: %w", err)
	}

	return path, nil
}

// StatementFilename only uses the visible digits of the masked number
func StatementFilename(statement *models.AccountStatement, format ExportFormat) string {
	suffix := strings.TrimLeft(statement.AccountNumber, "X")
	if suffix == "" {
		suffix = "XXXX"
	}
	return fmt.Sprintf("statement_%s_%s.%s", suffix, statement.GeneratedAt.Format(fileTimeLayout), format)
}

// Markdown renders the statement as a GFM document; the HTML export and the
// console both start from it
func (s *StatementService) Markdown(statement *models.AccountStatement) string {
	var b strings.Builder

	b.WriteString("# Account Statement\n\n")
	fmt.Fprintf(&b, "- **Account Number:** %s\n", escapeMarkdown(statement.AccountNumber))
	fmt.Fprintf(&b, "- **Account Holder:** %s\n", escapeMarkdown(statement.HolderName))
	fmt.Fprintf(&b, "- **Account Type:** %s\n", statement.AccountType)
	fmt.Fprintf(&b, "- **Current Balance:** %s\n", s.money(statement.ClosingBalance))
	fmt.Fprintf(&b, "- **Statement Date:** %s\n", statement.GeneratedAt.Format(statementTimeLayout))
	fmt.Fprintf(&b, "- **Total Transactions:** %d\n\n", statement.Summary.TransactionCount)

	b.WriteString(s.TransactionsMarkdown(statement.Transactions))

	b.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&b, "- Deposits: %s (%d)\n", s.money(statement.Summary.TotalDeposits), statement.Summary.DepositCount)
	fmt.Fprintf(&b, "- Withdrawals: %s (%d)\n", s.money(statement.Summary.TotalWithdrawals), statement.Summary.WithdrawalCount)
	fmt.Fprintf(&b, "- Transfers in: %s\n", s.money(statement.Summary.TotalTransfersIn))
	fmt.Fprintf(&b, "- Transfers out: %s\n", s.money(statement.Summary.TotalTransfersOut))
	fmt.Fprintf(&b, "- Net change: %s\n", statement.Summary.NetChange.StringFixed(2))

	return b.String()
}

// TransactionsMarkdown renders rows as a GFM table
func (s *StatementService) TransactionsMarkdown(rows []models.StatementTransaction) string {
	if len(rows) == 0 {
		return "_No transactions._\n"
	}

	var b strings.Builder
	b.WriteString("| S.No | Description | Amount | Balance After | Timestamp |\n")
	b.WriteString("|---:|---|---:|---:|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			row.Sequence,
			escapeMarkdown(row.Description),
			s.money(row.Amount),
			s.money(row.RunningBalance),
			row.Date.Format(statementTimeLayout),
		)
	}
	return b.String()
}

func (s *StatementService) money(amount decimal.Decimal) string {
	return FormatMoney(amount, s.currency)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`<`, `\<`,
	`>`, `\>`,
	`[`, `\[`,
	`]`, `\]`,
	`#`, `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
