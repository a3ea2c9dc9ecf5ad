package parser

import (
	"regexp"
	"strings"

	"github.com/credlens/statement-parser/internal/models"
)

// SBIExtractor handles SBI Card statements.
//
// SBI masks the card number in two-character groups ("XXXX XXXX XXXX XX46")
// and places transactions after a "TRANSACTIONS FOR" marker. Statement and
// due dates sit near their labels but not always on the same line, so both
// go through the shared label-then-nearby-date search.
type SBIExtractor struct{}

func (e *SBIExtractor) BankName() string {
	return "SBI Card"
}

var (
	// Tolerates line breaks between the label and the masked digits.
	sbiCardNumberRe = regexp.MustCompile(`(?i)Credit\s*Card\s*Number[\s:\n\r]*X{2,}\s*X{2,}\s*X{2,}\s*X{2,}\s*X{0,2}(\d{2,4})`)
	sbiCycleRe      = regexp.MustCompile(`(?i)for\s+Statement\s+Period\s*:\s*([0-9]{1,2}\s*[A-Za-z]{3,}\s*[0-9]{2,4})\s*to\s*([0-9]{1,2}\s*[A-Za-z]{3,}\s*[0-9]{2,4})`)
	sbiTotalRe      = regexp.MustCompile(`(?is)Total\s*Amount\s*Due.*?([0-9,]+\.\d{2})`)
	sbiMinRe        = regexp.MustCompile(`(?is)Minimum\s*Amount\s*Due.*?([0-9,]+\.\d{2})`)

	// "30 Sep 25 TPS*PHONEPE WALLET MUMBAI MAH 5,150.00 D" — the trailing
	// letter is an optional credit/debit/memo marker.
	sbiTxnRe = regexp.MustCompile(`^(\d{1,2}\s*[A-Za-z]{3}\s*\d{2,4})\s+(.+?)\s+([0-9,]+\.\d{2})\s*[CDM]?$`)
)

func (e *SBIExtractor) Extract(text string) *models.StatementFields {
	fields := models.NewStatementFields()

	if m := sbiCardNumberRe.FindStringSubmatch(text); m != nil {
		fields.Last4 = zeroPad4(m[1])
	}

	if m := sbiCycleRe.FindStringSubmatch(text); m != nil {
		fields.BillingCycleStart = NormalizeDate(m[1])
		fields.BillingCycleEnd = NormalizeDate(m[2])
	}

	if raw := findDateNearLabel(text, `Statement\s*Date`, 200, 40); raw != "" {
		fields.StatementDate = NormalizeDate(raw)
	}
	if raw := findDateNearLabel(text, `Payment\s*Due\s*Date`, 200, 40); raw != "" {
		fields.PaymentDueDate = NormalizeDate(raw)
	}

	if m := sbiTotalRe.FindStringSubmatch(text); m != nil {
		fields.TotalBalance = "₹" + strings.ReplaceAll(m[1], ",", "")
	}
	if m := sbiMinRe.FindStringSubmatch(text); m != nil {
		fields.MinimumDue = "₹" + strings.ReplaceAll(m[1], ",", "")
	}

	fields.Transactions = extractSBITransactions(text)

	return fields
}

// extractSBITransactions scans the region after "TRANSACTIONS FOR" (or the
// whole text when the marker is missing) line by line. Transaction type is
// not populated for SBI even though the trailing C/D marker is matched.
func extractSBITransactions(text string) []models.Transaction {
	region := text
	if idx := strings.Index(text, "TRANSACTIONS FOR"); idx != -1 {
		region = text[idx:]
	}

	txns := []models.Transaction{}
	for _, line := range strings.Split(region, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := sbiTxnRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		txns = append(txns, models.Transaction{
			Date:        NormalizeDate(m[1]),
			Description: collapseSpaces(m[2]),
			Amount:      strings.ReplaceAll(m[3], ",", ""),
		})
	}
	return txns
}

// zeroPad4 left-pads captured card digits to four characters; the SBI mask
// sometimes absorbs the leading digits into the X groups.
func zeroPad4(s string) string {
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
