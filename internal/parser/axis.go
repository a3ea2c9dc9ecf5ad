package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/credlens/statement-parser/internal/models"
)

// AxisExtractor handles Axis Bank credit card statements.
//
// Axis spreads a transaction across several physical lines, so rows are
// reconstructed as blocks: every line that begins with a date token opens a
// block that runs until the next date-starting line. The payment due date is
// the least reliably labeled field and goes through a five-step fallback
// ladder ending in a blind scan of the document head.
type AxisExtractor struct{}

func (e *AxisExtractor) BankName() string {
	return "Axis Bank"
}

var (
	axisDayMonYearRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3,9})\s+'?(\d{2,4})$`)
	axisMonYearRe    = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{4})$`)
	axisNumericRe    = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)
	axisISORe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// normalizeDateAxis converts the Axis date shapes to ISO YYYY-MM-DD:
// "09 Oct '25", "09.10.2025", "Oct 2025" (first of month), ISO passthrough.
// Two-digit years become 2000+yy. Returns the stripped input on failure.
func normalizeDateAxis(s string) string {
	s0 := strings.TrimSpace(s)
	if s0 == "" {
		return ""
	}
	s0 = strings.NewReplacer("’", "'", "‘", "'", ".", "").Replace(s0)
	s0 = strings.TrimSpace(s0)

	if m := axisDayMonYearRe.FindStringSubmatch(s0); m != nil {
		day := atoi(m[1])
		mon := monthToNum(m[2])
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if mon >= 1 && mon <= 12 {
			return fmt.Sprintf("%04d-%02d-%02d", year, mon, day)
		}
	}

	if m := axisMonYearRe.FindStringSubmatch(s0); m != nil {
		if mon := monthToNum(m[1]); mon >= 1 && mon <= 12 {
			return fmt.Sprintf("%s-%02d-01", m[2], mon)
		}
	}

	if m := axisNumericRe.FindStringSubmatch(s0); m != nil {
		y := atoi(m[3])
		if y < 100 {
			y += 2000
		}
		return fmt.Sprintf("%04d-%02d-%02d", y, atoi(m[2]), atoi(m[1]))
	}
	// Dots were stripped above, so re-check the raw input for dd.mm.yyyy.
	if m := axisNumericRe.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		y := atoi(m[3])
		if y < 100 {
			y += 2000
		}
		return fmt.Sprintf("%04d-%02d-%02d", y, atoi(m[2]), atoi(m[1]))
	}

	if axisISORe.MatchString(s0) {
		return s0
	}
	return s0
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// axisDateToken covers every date shape Axis prints near labels, including
// month-day-year ("Oct 14, '25") and bare month-year forms.
const axisDateToken = `(\d{1,2}\s+[A-Za-z]{3,9}\s+'?\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}|\d{4}-\d{2}-\d{2}|[A-Za-z]{3,9}\s+\d{1,2},?\s*'?\d{2,4}|\b[A-Za-z]{3,9}\s+\d{4}\b)`

var (
	axisDateTokenRe = regexp.MustCompile(`(?i)` + axisDateToken)
	axisTotalRe     = regexp.MustCompile(`(?i)(?:Total\s+Payment\s+Due|Total\s+Amount\s+Due|Total\s+Due)\s*[:\-]?\s*(?:₹|Rs\.?)?\s*([0-9,]+(?:\.\d{1,2})?)`)
	axisMinRe       = regexp.MustCompile(`(?i)(?:Minimum\s+Payment\s+Due|Minimum\s+Amount\s+Due|Minimum\s+Due)\s*[:\-]?\s*(?:₹|Rs\.?)?\s*([0-9,]+(?:\.\d{1,2})?)`)
	axisStmtMonthRe = regexp.MustCompile(`(?i)Selected\s+Statement\s+Month\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{4})`)
	axisStmtDateRe  = regexp.MustCompile(`(?i)Statement\s+Date\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2}\s*'?\d{2,4})`)
	axisCycleRe     = regexp.MustCompile(`(?i)(?:Statement\s*period|Billing\s*Cycle)\s*[:\-]?\s*([A-Za-z0-9/\-\s,']+?)\s*(?:to|-)\s*([A-Za-z0-9/\-\s,']+?)\b`)
	axisFromToRe    = regexp.MustCompile(`(?i)From\s+([A-Za-z0-9/\-\s,']+?)\s+To\s+([A-Za-z0-9/\-\s,']+?)\b`)
)

// axisDueLabels in order of preference; more specific first.
var axisDueLabels = []string{
	`Payment\s+Due\s+Date`,
	`Payment\s+Due\s+On`,
	`Payment\s+Due`,
	`Pay\s+by`,
	`Due\s+Date`,
	`Last\s+Date\s+for\s+Payment`,
	`Payment\s+Due\s+Amount`,
}

var axisDueGlobalRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Payment\s+Due\s+Date|Payment\s+Due|Due\s+Date)\s*[:\-]?\s*` + axisDateToken),
	regexp.MustCompile(`(?i)(?:Pay\s+by|Last\s+Date\s+for\s+Payment)\s*[:\-]?\s*` + axisDateToken),
	regexp.MustCompile(`(?i)Due\s+Date\s*[\r\n]+\s*` + axisDateToken),
}

func (e *AxisExtractor) Extract(text string) *models.StatementFields {
	fields := models.NewStatementFields()

	fields.Last4 = FindLast4(text)

	top := head(text, 5000)
	top = strings.ReplaceAll(top, "\r\n", "\n")
	top = strings.ReplaceAll(top, "\r", "\n")

	if m := axisTotalRe.FindStringSubmatch(top); m != nil {
		fields.TotalBalance = CleanAmount(m[1])
	}
	if m := axisMinRe.FindStringSubmatch(top); m != nil {
		fields.MinimumDue = CleanAmount(m[1])
	}

	fields.PaymentDueDate = e.findDueDate(text, top)

	if m := axisStmtMonthRe.FindStringSubmatch(top); m != nil {
		fields.StatementDate = normalizeDateAxis(m[1])
	} else if m := axisStmtDateRe.FindStringSubmatch(top); m != nil {
		fields.StatementDate = normalizeDateAxis(m[1])
	}

	if m := axisCycleRe.FindStringSubmatch(text); m != nil {
		fields.BillingCycleStart = normalizeDateAxis(strings.TrimSpace(m[1]))
		fields.BillingCycleEnd = normalizeDateAxis(strings.TrimSpace(m[2]))
	} else if m := axisFromToRe.FindStringSubmatch(text); m != nil {
		fields.BillingCycleStart = normalizeDateAxis(strings.TrimSpace(m[1]))
		fields.BillingCycleEnd = normalizeDateAxis(strings.TrimSpace(m[2]))
	}

	txns := extractAxisTransactions(text)
	fields.Transactions = txns

	// Billing cycle still missing: derive from the transaction date range.
	if (fields.BillingCycleStart == "" || fields.BillingCycleEnd == "") && len(txns) > 0 {
		var valid []time.Time
		for _, t := range txns {
			if d, err := time.Parse("2006-01-02", t.Date); err == nil {
				valid = append(valid, d)
			}
		}
		if len(valid) > 0 {
			min, max := valid[0], valid[0]
			for _, d := range valid[1:] {
				if d.Before(min) {
					min = d
				}
				if d.After(max) {
					max = d
				}
			}
			if fields.BillingCycleStart == "" {
				fields.BillingCycleStart = min.Format("2006-01-02")
			}
			if fields.BillingCycleEnd == "" {
				fields.BillingCycleEnd = max.Format("2006-01-02")
			}
		}
	}

	if fields.StatementDate == "" && fields.BillingCycleEnd != "" {
		fields.StatementDate = fields.BillingCycleEnd
	}

	return fields
}

var axisISODateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// findDueDate walks the due-date fallback ladder: label+date same line,
// label then date on the next line, a 300-char window after the label,
// whole-document label patterns, and finally any plausible date in the
// first 1200 characters whose year lands in [2023, 2026].
func (e *AxisExtractor) findDueDate(text, top string) string {
	for _, label := range axisDueLabels {
		sameLine := regexp.MustCompile(`(?i)` + label + `\s*[:\-]?\s*` + axisDateToken)
		if m := sameLine.FindStringSubmatch(top); m != nil {
			return normalizeDateAxis(m[1])
		}

		nextLine := regexp.MustCompile(`(?i)` + label + `\s*[:\-]?\s*[\r\n]+\s*` + axisDateToken)
		if m := nextLine.FindStringSubmatch(top); m != nil {
			return normalizeDateAxis(m[1])
		}

		labelRe := regexp.MustCompile(`(?i)` + label)
		if loc := labelRe.FindStringIndex(top); loc != nil {
			end := loc[1] + 300
			if end > len(top) {
				end = len(top)
			}
			if m := axisDateTokenRe.FindStringSubmatch(top[loc[1]:end]); m != nil {
				return normalizeDateAxis(m[1])
			}
		}
	}

	for _, re := range axisDueGlobalRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return normalizeDateAxis(m[1])
		}
	}

	for _, m := range axisDateTokenRe.FindAllStringSubmatch(head(top, 1200), -1) {
		norm := normalizeDateAxis(m[1])
		if !axisISODateRe.MatchString(norm) {
			continue
		}
		year := atoi(norm[:4])
		if year >= 2023 && year <= 2026 {
			return norm
		}
	}
	return ""
}

// Section headers that bound the Axis transaction region.
var axisSectionHeaders = []string{
	"transaction summary",
	"transaction details",
	"transaction history",
	"transactions for the period",
	"card transactions",
}

var (
	axisDateLineRe   = regexp.MustCompile(`(?im)^(\d{1,2}\s+[A-Za-z]{3,9}\s+'?\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}|\d{4}-\d{2}-\d{2})\b`)
	axisRupeeAmtRe   = regexp.MustCompile(`(?i)(?:₹|Rs\.?)\s*([0-9,]+(?:\.[0-9]{1,2})?)`)
	axisMarkedAmtRe  = regexp.MustCompile(`([0-9,]+(?:\.\d{1,2})?)\s*(?:Cr|Dr|CR|DR|\bCredit\b|\bDebit\b)`)
	axisTypeRe       = regexp.MustCompile(`(?i)\b(Cr|Dr|Credit|Debit|credited|debited)\b`)
	axisCreditHintRe = regexp.MustCompile(`(?i)\b(refund|cashback|credited)\b`)
	axisDebitHintRe  = regexp.MustCompile(`(?i)\b(purchase|spent|debited|paid|withdrawal)\b`)
	axisLineCreditRe = regexp.MustCompile(`(?i)\b(cr|credit|credited|cashback)\b`)
	axisLineDebitRe  = regexp.MustCompile(`(?i)\b(dr|debit|debited|purchase|spent)\b`)
	axisAnyDateRe    = regexp.MustCompile(`(\d{1,2}\s+[A-Za-z]{3,9}\s+'?\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}|\d{4}-\d{2}-\d{2})`)
	horizWSRe        = regexp.MustCompile(`[ \t]+`)
)

// extractAxisTransactions reconstructs transaction rows as blocks bounded by
// date-starting lines. Each block keeps its multi-line description; the
// amount is located by currency-symbol proximity or a trailing Cr/Dr marker.
// When no date-starting line exists at all, it falls back to a per-line scan
// keyed on currency-symbol presence.
func extractAxisTransactions(text string) []models.Transaction {
	txns := []models.Transaction{}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	block := text
	lower := strings.ToLower(text)
	for _, header := range axisSectionHeaders {
		if idx := strings.Index(lower, header); idx != -1 {
			block = text[idx:]
			break
		}
	}

	matches := axisDateLineRe.FindAllStringSubmatchIndex(block, -1)
	if len(matches) == 0 {
		return axisLineFallback(block)
	}

	for i, m := range matches {
		dateToken := strings.TrimSpace(block[m[2]:m[3]])
		start := m[1]
		end := len(block)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		seg := strings.TrimSpace(horizWSRe.ReplaceAllString(block[start:end], " "))

		amt := axisRupeeAmtRe.FindStringSubmatchIndex(seg)
		if amt == nil {
			amt = axisMarkedAmtRe.FindStringSubmatchIndex(seg)
		}
		if amt == nil {
			continue
		}
		amount := CleanAmount(seg[amt[2]:amt[3]])

		txType := ""
		if tm := axisTypeRe.FindStringSubmatch(seg); tm != nil {
			switch strings.ToLower(tm[1]) {
			case "cr", "credit", "credited":
				txType = "Credit"
			case "dr", "debit", "debited":
				txType = "Debit"
			}
		} else if axisCreditHintRe.MatchString(seg) {
			txType = "Credit"
		} else if axisDebitHintRe.MatchString(seg) {
			txType = "Debit"
		}

		desc := collapseSpaces(seg[:amt[0]])

		txns = append(txns, models.Transaction{
			Date:        normalizeDateAxis(dateToken),
			Description: desc,
			Amount:      amount,
			Type:        txType,
		})
	}

	return txns
}

// axisLineFallback treats any line carrying a currency-marked amount as a
// transaction row.
func axisLineFallback(block string) []models.Transaction {
	txns := []models.Transaction{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		am := axisRupeeAmtRe.FindStringSubmatch(line)
		if am == nil {
			continue
		}
		dateISO := ""
		if dm := axisAnyDateRe.FindString(line); dm != "" {
			dateISO = normalizeDateAxis(dm)
		}
		desc := axisRupeeAmtRe.ReplaceAllString(line, "")
		txType := ""
		if axisLineCreditRe.MatchString(line) {
			txType = "Credit"
		} else if axisLineDebitRe.MatchString(line) {
			txType = "Debit"
		}
		txns = append(txns, models.Transaction{
			Date:        dateISO,
			Description: collapseSpaces(desc),
			Amount:      CleanAmount(am[1]),
			Type:        txType,
		})
	}
	return txns
}
