// Package writer renders parsed statements to CSV.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/credlens/statement-parser/internal/models"
)

// CSVWriter writes a parsed statement to CSV format: optional metadata header
// rows followed by one row per transaction.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the statement to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result models.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the statement in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result models.Result) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	fields := result.Fields
	if fields == nil {
		fields = models.NewStatementFields()
	}

	// Metadata as comment-style header rows.
	if w.IncludeHeader {
		writer.Write([]string{"# Bank", string(result.Bank)})
		if fields.Last4 != "" {
			writer.Write([]string{"# Card Last 4", fields.Last4})
		}
		if fields.StatementDate != "" {
			writer.Write([]string{"# Statement Date", fields.StatementDate})
		}
		if fields.BillingCycleStart != "" || fields.BillingCycleEnd != "" {
			writer.Write([]string{"# Billing Cycle", fields.BillingCycleStart + " to " + fields.BillingCycleEnd})
		}
		if fields.PaymentDueDate != "" {
			writer.Write([]string{"# Payment Due Date", fields.PaymentDueDate})
		}
		if fields.TotalBalance != "" {
			writer.Write([]string{"# Total Balance", fields.TotalBalance})
		}
		if fields.MinimumDue != "" {
			writer.Write([]string{"# Minimum Due", fields.MinimumDue})
		}
	}

	header := []string{"Date", "Description", "Amount", "Type"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range fields.Transactions {
		row := []string{txn.Date, txn.Description, txn.Amount, txn.Type}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
