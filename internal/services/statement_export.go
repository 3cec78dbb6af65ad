package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"atm-simulator/internal/models"
)

const txtRule = "========================================================"

func writeStatementCSV(statement *models.AccountStatement, w io.Writer) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Account Statement"},
		{"Account Number", statement.AccountNumber},
		{"Account Holder", statement.HolderName},
		{"Account Type", string(statement.AccountType)},
		{"Currency", statement.Currency},
		{"Generated On", statement.GeneratedAt.Format(statementTimeLayout)},
		{"Opening Balance", statement.OpeningBalance.StringFixed(2)},
		{"Closing Balance", statement.ClosingBalance.StringFixed(2)},
		{},
		{"S.No", "Transaction Type", "Description", "Amount", "Balance After", "Timestamp", "Reference"},
	}
	for _, tx := range statement.Transactions {
		records = append(records, []string{
			strconv.Itoa(tx.Sequence),
			string(tx.TransactionType),
			tx.Description,
			tx.Amount.StringFixed(2),
			tx.RunningBalance.StringFixed(2),
			tx.Date.Format(statementTimeLayout),
			tx.Reference,
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func (s *StatementService) writeStatementTXT(statement *models.AccountStatement, w io.Writer) error {
	var b strings.Builder

	b.WriteString(txtRule + "\n")
	b.WriteString(centerLine("ACCOUNT STATEMENT", len(txtRule)) + "\n")
	b.WriteString(txtRule + "\n\n")
	fmt.Fprintf(&b, "Account Number    : %s\n", statement.AccountNumber)
	fmt.Fprintf(&b, "Account Holder    : %s\n", statement.HolderName)
	fmt.Fprintf(&b, "Account Type      : %s\n", statement.AccountType)
	fmt.Fprintf(&b, "Opening Balance   : %s\n", s.money(statement.OpeningBalance))
	fmt.Fprintf(&b, "Current Balance   : %s\n", s.money(statement.ClosingBalance))
	fmt.Fprintf(&b, "Statement Date    : %s\n", statement.GeneratedAt.Format(statementTimeLayout))
	fmt.Fprintf(&b, "Total Transactions: %d\n\n", statement.Summary.TransactionCount)
	b.WriteString(txtRule + "\n")
	b.WriteString(centerLine("TRANSACTION HISTORY", len(txtRule)) + "\n")
	b.WriteString(txtRule + "\n\n")

	for _, tx := range statement.Transactions {
		fmt.Fprintf(&b, "%d. %-28s | %12s | Balance: %12s | %s\n",
			tx.Sequence,
			tx.Description,
			tx.Amount.StringFixed(2),
			tx.RunningBalance.StringFixed(2),
			tx.Date.Format(statementTimeLayout),
		)
	}

	b.WriteString("\n" + txtRule + "\n")
	b.WriteString(centerLine("END OF STATEMENT", len(txtRule)) + "\n")
	b.WriteString(txtRule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (s *StatementService) writeStatementHTML(statement *models.AccountStatement, w io.Writer) error {
	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(s.Markdown(statement)), &body); err != nil {
		return fmt.Errorf("failed to render statement: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Account Statement - %s</title>\n", html.EscapeString(statement.AccountNumber))
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }\n")
	b.WriteString("table { width: 100%; border-collapse: collapse; background-color: white; }\n")
	b.WriteString("th { background-color: #003366; color: white; padding: 12px; text-align: left; }\n")
	b.WriteString("td { padding: 10px; border-bottom: 1px solid #ddd; }\n")
	b.WriteString(".footer { text-align: center; margin-top: 20px; color: #666; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	b.Write(body.Bytes())
	b.WriteString("<div class=\"footer\">\n<p>This is a system generated statement. No signature required.</p>\n</div>\n")
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func centerLine(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
