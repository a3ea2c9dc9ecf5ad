package parser

import (
	"testing"
)

func TestNormalizeDateAxis(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"09 Oct '25", "2025-10-09"},
		{"9 October 2025", "2025-10-09"},
		{"Oct 2025", "2025-10-01"},
		{"09/10/2025", "2025-10-09"},
		{"09-10-25", "2025-10-09"},
		{"09.10.2025", "2025-10-09"},
		{"2025-10-09", "2025-10-09"},
		{"garbage", "garbage"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := normalizeDateAxis(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAxisExtractor(t *testing.T) {
	e := &AxisExtractor{}

	text := `AXIS BANK Credit Card Statement
Card Number XXXX XXXX XXXX 9134
Total Payment Due ₹18,750.25
Minimum Payment Due ₹937.51
Payment Due Date
28 Oct '25

Transaction Details
Date Transaction Details Amount
09 Oct '25 SWIGGY BANGALORE ₹455.00 Dr
12 Oct '25 UPI CASHBACK ₹50.00 Cr
`

	fields := e.Extract(text)

	if fields.Last4 != "9134" {
		t.Errorf("last4: got %q, want %q", fields.Last4, "9134")
	}
	if fields.TotalBalance != "₹18750.25" {
		t.Errorf("total: got %q, want %q", fields.TotalBalance, "₹18750.25")
	}
	if fields.MinimumDue != "₹937.51" {
		t.Errorf("minimum: got %q, want %q", fields.MinimumDue, "₹937.51")
	}
	if fields.PaymentDueDate != "2025-10-28" {
		t.Errorf("due date: got %q, want %q", fields.PaymentDueDate, "2025-10-28")
	}

	if len(fields.Transactions) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(fields.Transactions))
	}

	txn := fields.Transactions[0]
	if txn.Date != "2025-10-09" {
		t.Errorf("txn[0].Date: got %q, want %q", txn.Date, "2025-10-09")
	}
	if txn.Description != "SWIGGY BANGALORE" {
		t.Errorf("txn[0].Description: got %q", txn.Description)
	}
	if txn.Amount != "₹455.00" {
		t.Errorf("txn[0].Amount: got %q, want %q", txn.Amount, "₹455.00")
	}
	if txn.Type != "Debit" {
		t.Errorf("txn[0].Type: got %q, want Debit", txn.Type)
	}

	txn = fields.Transactions[1]
	if txn.Date != "2025-10-12" {
		t.Errorf("txn[1].Date: got %q, want %q", txn.Date, "2025-10-12")
	}
	if txn.Type != "Credit" {
		t.Errorf("txn[1].Type: got %q, want Credit", txn.Type)
	}

	// No labeled billing cycle: derived from the transaction date range,
	// and the statement date follows the cycle end.
	if fields.BillingCycleStart != "2025-10-09" {
		t.Errorf("cycle start: got %q, want %q", fields.BillingCycleStart, "2025-10-09")
	}
	if fields.BillingCycleEnd != "2025-10-12" {
		t.Errorf("cycle end: got %q, want %q", fields.BillingCycleEnd, "2025-10-12")
	}
	if fields.StatementDate != "2025-10-12" {
		t.Errorf("statement date: got %q, want %q", fields.StatementDate, "2025-10-12")
	}
}

func TestAxisDueDateHeadScan(t *testing.T) {
	// No due-date label anywhere: the ladder ends with a blind scan of the
	// document head for a date whose year is plausible.
	e := &AxisExtractor{}
	text := `AXIS BANK Credit Card
Generated 28 Oct '25
`
	fields := e.Extract(text)
	if fields.PaymentDueDate != "2025-10-28" {
		t.Errorf("due date: got %q, want %q", fields.PaymentDueDate, "2025-10-28")
	}
}
