package parser

import (
	"regexp"
	"strings"

	"github.com/credlens/statement-parser/internal/models"
)

// KotakExtractor handles Kotak Mahindra credit card statements.
//
// Kotak keeps each transaction on a single line and labels the summary
// fields inline, so most of the work is done by the generic line extractor
// plus a handful of labeled patterns.
type KotakExtractor struct{}

func (e *KotakExtractor) BankName() string {
	return "Kotak Mahindra Bank"
}

var (
	kotakStmtDateRe = regexp.MustCompile(`Statement\s+Date\s+([0-9]{1,2}[-/A-Za-z]+[-/0-9]+)`)
	kotakCycleRe    = regexp.MustCompile(`Transaction\s+details\s+from\s+([A-Za-z0-9-]+)\s+to\s+([A-Za-z0-9-]+)`)
	kotakDueDateRe  = regexp.MustCompile(`(?i)Remember\s*to\s*pay\s*by\s*([0-9]{1,2}[-/][A-Za-z]{3}[-/][0-9]{4})`)
	kotakTotalRe    = regexp.MustCompile(`Total\s+Amount\s+Due.*?Rs\.?\s?([0-9,]+\.\d{2})`)
	kotakMinRe      = regexp.MustCompile(`Minimum\s+Amount\s+Due.*?Rs\.?\s?([0-9,]+\.\d{2})`)
)

func (e *KotakExtractor) Extract(text string) *models.StatementFields {
	fields := models.NewStatementFields()

	fields.Last4 = FindLast4(text)

	if m := kotakStmtDateRe.FindStringSubmatch(text); m != nil {
		fields.StatementDate = NormalizeDate(m[1])
	}

	if m := kotakCycleRe.FindStringSubmatch(text); m != nil {
		fields.BillingCycleStart = NormalizeDate(m[1])
		fields.BillingCycleEnd = NormalizeDate(m[2])
	}

	if m := kotakDueDateRe.FindStringSubmatch(text); m != nil {
		fields.PaymentDueDate = NormalizeDate(m[1])
	}

	// Kotak prints amounts as "Rs. 12,345.67"; totals are kept as plain
	// decimal strings, matching the statement's own convention.
	if m := kotakTotalRe.FindStringSubmatch(text); m != nil {
		fields.TotalBalance = strings.ReplaceAll(m[1], ",", "")
	}
	if m := kotakMinRe.FindStringSubmatch(text); m != nil {
		fields.MinimumDue = strings.ReplaceAll(m[1], ",", "")
	}

	fields.Transactions = ExtractTransactions(text)

	return fields
}
