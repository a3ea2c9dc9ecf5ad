package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/credlens/statement-parser/internal/models"
)

// HDFCExtractor handles HDFC Bank (Millennia) credit card statements.
//
// HDFC statements frequently arrive through the OCR path, which renders the
// rupee glyph as a bare "C"; the transaction row pattern keys on that marker.
// Summary labels and their values end up in different columns, so the
// statement date and billing period both have a flattened-text fallback.
type HDFCExtractor struct{}

func (e *HDFCExtractor) BankName() string {
	return "HDFC Bank"
}

var hdfcDateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"2/1/2006",
	"2-1-2006",
}

// normalizeDateHDFC converts tokens like "14 Oct, 2025" or "15/09/2025" to
// ISO YYYY-MM-DD. Returns the stripped input on failure.
func normalizeDateHDFC(s string) string {
	s0 := strings.TrimSpace(s)
	if s0 == "" {
		return ""
	}
	s0 = strings.NewReplacer(",", "", "’", "'", "‘", "'").Replace(s0)
	for _, layout := range hdfcDateLayouts {
		if t, err := time.Parse(layout, s0); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s0
}

var (
	hdfcDateTokenRe  = regexp.MustCompile(`(?i)([0-9]{1,2}\s*[A-Za-z]{3,9},?\s*\d{4})`)
	hdfcStmtLabelRe  = regexp.MustCompile(`(?i)Statement\s*Date`)
	hdfcPeriodRe     = regexp.MustCompile(`(?i)Billing\s*Period\s*(?:[:\-]?\s*)[\n\r\t ]*([0-9]{1,2}\s*[A-Za-z]{3,9},?\s*\d{4})\s*[-–to]+\s*([0-9]{1,2}\s*[A-Za-z]{3,9},?\s*\d{4})`)
	hdfcPeriodFlatRe = regexp.MustCompile(`(?i)Billing\s*Period\s*.*?\s*([0-9]{1,2}\s*[A-Za-z]{3,9},?\s*\d{4})\s*[-–to]+\s*([0-9]{1,2}\s*[A-Za-z]{3,9},?\s*\d{4})`)
	hdfcTotalRe      = regexp.MustCompile(`(?i)TOTAL\s+AMOUNT\s+DUE\s*(?:\n|:)\s*C?\s*([0-9,]+\.\d{2})`)
	hdfcMinRe        = regexp.MustCompile(`(?i)MINIMUM\s+DUE\s*(?:\n|:)\s*C?\s*([0-9,]+\.\d{2})`)
	hdfcDueDateRe    = regexp.MustCompile(`(?i)(?:DUE\s+DATE|Payment\s+Due\s+Date)\s*(?:\n|:)?\s*([0-9]{1,2}\s*[A-Za-z]{3,9},?\s*\d{4})`)

	hdfcTxnBlockRe = regexp.MustCompile(`(?i)(Domestic Transactions[\s\S]+?)(?:Rewards Program Points|Total Outstanding)`)
	// Row: date, optional pipe and HH:MM time, description, then the OCR
	// currency marker "C" and a two-decimal amount.
	hdfcTxnRowRe = regexp.MustCompile(`(?m)(?P<date>\d{1,2}/\d{1,2}/\d{4})\s*\|?\s*(?:\d{1,2}:\d{2}\s*)?(?P<desc>[A-Za-z0-9\s\.,'&\-\(\)#/]+?)\s+C\s*(?P<amt>[0-9,]+\.\d{2})`)

	hdfcCreditHintRe = regexp.MustCompile(`(?i)payment|credit|refund`)
	hdfcLeadingNumRe = regexp.MustCompile(`^\d+\s+`)
)

func (e *HDFCExtractor) Extract(text string) *models.StatementFields {
	fields := models.NewStatementFields()

	fields.Last4 = FindLast4(text)

	flat := ""

	// Statement date: windowed scan after the label on the raw text, then on
	// the whitespace-flattened text where column layouts broke the line.
	if loc := hdfcStmtLabelRe.FindStringIndex(text); loc != nil {
		if cand := findDateInWindow(text, loc[1], 180); cand != "" {
			fields.StatementDate = normalizeDateHDFC(cand)
		}
	}
	if fields.StatementDate == "" {
		flat = collapseSpaces(text)
		if loc := hdfcStmtLabelRe.FindStringIndex(flat); loc != nil {
			if cand := findDateInWindow(flat, loc[1], 200); cand != "" {
				fields.StatementDate = normalizeDateHDFC(cand)
			}
		}
	}

	if m := hdfcPeriodRe.FindStringSubmatch(text); m != nil {
		fields.BillingCycleStart = normalizeDateHDFC(m[1])
		fields.BillingCycleEnd = normalizeDateHDFC(m[2])
	} else {
		if flat == "" {
			flat = collapseSpaces(text)
		}
		// Non-greedy skip lets the statement-date value sit between the
		// label and the actual date range.
		if m := hdfcPeriodFlatRe.FindStringSubmatch(flat); m != nil {
			fields.BillingCycleStart = normalizeDateHDFC(m[1])
			fields.BillingCycleEnd = normalizeDateHDFC(m[2])
		}
	}

	if m := hdfcTotalRe.FindStringSubmatch(text); m != nil {
		fields.TotalBalance = CleanAmount(m[1])
	}
	if m := hdfcMinRe.FindStringSubmatch(text); m != nil {
		fields.MinimumDue = CleanAmount(m[1])
	}

	if m := hdfcDueDateRe.FindStringSubmatch(text); m != nil {
		fields.PaymentDueDate = normalizeDateHDFC(m[1])
	}

	fields.Transactions = extractHDFCTransactions(text)

	if fields.StatementDate == "" && fields.BillingCycleEnd != "" {
		fields.StatementDate = fields.BillingCycleEnd
	}

	return fields
}

// findDateInWindow returns the first date token within window bytes after pos.
func findDateInWindow(text string, pos, window int) string {
	if pos >= len(text) {
		return ""
	}
	end := pos + window
	if end > len(text) {
		end = len(text)
	}
	if m := hdfcDateTokenRe.FindStringSubmatch(text[pos:end]); m != nil {
		return m[1]
	}
	return ""
}

// extractHDFCTransactions pulls rows from the block between the "Domestic
// Transactions" marker and the rewards/outstanding footer. Transaction type
// is inferred from the description since HDFC prints no Cr/Dr column.
func extractHDFCTransactions(text string) []models.Transaction {
	txns := []models.Transaction{}

	bm := hdfcTxnBlockRe.FindStringSubmatch(text)
	if bm == nil {
		return txns
	}
	block := strings.ReplaceAll(bm[1], "\r", "\n")

	for _, m := range hdfcTxnRowRe.FindAllStringSubmatch(block, -1) {
		desc := hdfcLeadingNumRe.ReplaceAllString(strings.TrimSpace(m[2]), "")
		desc = collapseSpaces(desc)

		txType := "Debit"
		if hdfcCreditHintRe.MatchString(desc) {
			txType = "Credit"
		}

		txns = append(txns, models.Transaction{
			Date:        normalizeDateHDFC(m[1]),
			Description: desc,
			Amount:      CleanAmount(m[3]),
			Type:        txType,
		})
	}
	return txns
}
