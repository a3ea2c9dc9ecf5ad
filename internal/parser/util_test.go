package parser

import (
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2025-10-14", "2025-10-14"},
		{"14-Oct-2025", "2025-10-14"},
		{"14 October 2025", "2025-10-14"},
		{"Oct 14, 2025", "2025-10-14"},
		{"15/03/2025", "2025-03-15"},
		{"30 Sep 25", "2025-09-30"},
		{"09 Oct '25", "2025-10-09"},
		{"Oct 2025", "2025-10-01"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeDate(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1,234.56", "₹1234.56"},
		{"₹1234.50", "₹1234.50"}, // already clean: must be idempotent
		{"Rs. 5,000", "₹5000.00"},
		{"INR 250", "₹250.00"},
		{"`1,180.00", "₹1180.00"},
		{"1234.5", "₹1234.50"},
		{"no digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CleanAmount(tt.input)
			if got != tt.expected {
				t.Errorf("CleanAmount(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindLast4(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"labeled kotak style", "Primary Card Transactions-416644XXXXXX8253", "8253"},
		{"masked group", "Card Number: XXXX XXXX XXXX 1234", "1234"},
		{"standalone fallback skips years", "card ending 5678 issued 2025", "5678"},
		{"only a year", "statement for 2024", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindLast4(tt.input)
			if got != tt.expected {
				t.Errorf("FindLast4(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindDateNearLabel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		label    string
		expected string
	}{
		{
			"date after label on next line",
			"Statement Date\n15 Oct 2025\n",
			`Statement\s*Date`,
			"15 Oct 2025",
		},
		{
			"date before label",
			"04 Nov 2025 Payment Due Date\n",
			`Payment\s*Due\s*Date`,
			"04 Nov 2025",
		},
		{
			"label missing",
			"nothing to see here",
			`Payment\s*Due\s*Date`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findDateNearLabel(tt.text, tt.label, 200, 40)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	got := collapseSpaces("  a \t b\n\nc  ")
	if got != "a b c" {
		t.Errorf("got %q, want %q", got, "a b c")
	}
}
