package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/credlens/statement-parser/internal/models"
)

// ICICIExtractor handles ICICI Bank credit card statements.
//
// ICICI fronts the statement with a summary panel, so most fields are looked
// up in the first 5000 characters before widening to whitespace-flattened
// views of the header and then the whole document. Summary amounts appear in
// two label phrasings; both are tried in each zone.
type ICICIExtractor struct{}

func (e *ICICIExtractor) BankName() string {
	return "ICICI Bank"
}

// iciciDateLayouts feed normalizeDateICICI in order.
var iciciDateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
}

var iciciMonthYearRe = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{4})$`)

// normalizeDateICICI normalizes the date shapes ICICI uses, additionally
// accepting a bare month+year ("Oct 2025" -> 2025-10-01). Returns the
// trimmed input on failure.
func normalizeDateICICI(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.NewReplacer("’", "'", "‘", "'", ".", "", ",", "").Replace(trimmed)
	cleaned = collapseSpaces(cleaned)
	for _, layout := range iciciDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if m := iciciMonthYearRe.FindStringSubmatch(trimmed); m != nil {
		if mo := monthToNum(m[1]); mo >= 1 && mo <= 12 {
			return fmt.Sprintf("%s-%02d-01", m[2], mo)
		}
	}
	return trimmed
}

const iciciHeaderZone = 5000

var (
	iciciMaskedRe      = regexp.MustCompile(`X{4,}\s*(\d{4})`)
	iciciCardLabelRe   = regexp.MustCompile(`(?i)(?:Card|Credit|XXXXX|XXXX)\s*[:\-]?\s*(\d{4})`)
	iciciAnyFourRe     = regexp.MustCompile(`\b(\d{4})\b`)
	iciciPeriodRe      = regexp.MustCompile(`(?i)(?:Statement\s+period|Billing\s*Period)\s*[:\-]?\s*([A-Za-z0-9,\s/\-']+?)\s*(?:to|[-–])\s*([A-Za-z0-9,\s/\-']+?)\b`)
	iciciStmtMonthRe   = regexp.MustCompile(`(?i)STATEMENT\s+DATE\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{4})`)
	iciciStmtDateRe    = regexp.MustCompile(`(?i)Statement\s+Date\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2}\s*'?\d{2,4})`)
	iciciStrictCycleRe = regexp.MustCompile(`(?i)Statement\s*Period\s*[:\-]?\s*([0-9]{1,2}\s*[A-Za-z]{3,9}\s*[0-9]{4})\s*(?:to|-)\s*([0-9]{1,2}\s*[A-Za-z]{3,9}\s*[0-9]{4})`)
)

var iciciDueDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Payment\s+Due\s+Date\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2},?\s*\d{4})`),
	regexp.MustCompile(`(?i)Payment\s+Due\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2},?\s*\d{4})`),
	regexp.MustCompile(`(?i)Pay\s+by\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2},?\s*\d{4})`),
	regexp.MustCompile(`(?i)Due\s+Date\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2},?\s*\d{4})`),
	regexp.MustCompile(`(?i)Payment\s+Due\s+Date\s*[:\-]?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`),
}

var iciciTotalRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Total\s+Amount\s+Due\s*[:\n\r-]*\s*[₹` + "`" + `Rs\.]*\s*([0-9,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)Total\s+Amount\s+Due[\s\S]{0,40}?([0-9,]+(?:\.\d{1,2})?)`),
}

var iciciMinRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Minimum\s+Amount\s+Due|Minimum\s+Amount)\s*[:\n\r-]*\s*[₹` + "`" + `Rs\.]*\s*([0-9,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)Minimum\s+Amount\s+Due[\s\S]{0,40}?([0-9,]+(?:\.\d{1,2})?)`),
}

func (e *ICICIExtractor) Extract(text string) *models.StatementFields {
	fields := models.NewStatementFields()

	top := head(text, iciciHeaderZone)
	flatTop := collapseSpaces(top)
	flatAll := collapseSpaces(text)

	// Last-4: masked pattern in the header zone first; the generic labeled
	// search and the raw four-digit fallback stay inside the header too,
	// to avoid picking digits out of the transaction table.
	if m := iciciMaskedRe.FindStringSubmatch(top); m != nil {
		fields.Last4 = m[1]
	} else if m := iciciCardLabelRe.FindStringSubmatch(top); m != nil {
		fields.Last4 = m[1]
	} else if all := iciciAnyFourRe.FindAllStringSubmatch(top, -1); len(all) > 0 {
		fields.Last4 = all[len(all)-1][1]
	}

	// Statement period: raw header, flattened header, flattened document.
	for _, zone := range []string{top, flatTop, flatAll} {
		if m := iciciPeriodRe.FindStringSubmatch(zone); m != nil {
			fields.BillingCycleStart = normalizeDateICICI(m[1])
			fields.BillingCycleEnd = normalizeDateICICI(m[2])
			break
		}
	}

	if m := iciciStmtMonthRe.FindStringSubmatch(top); m != nil {
		fields.StatementDate = normalizeDateAxis(m[1])
	} else if m := iciciStmtDateRe.FindStringSubmatch(top); m != nil {
		fields.StatementDate = normalizeDateAxis(m[1])
	}

	// Stricter day-first period form overrides the loose match when present.
	if m := iciciStrictCycleRe.FindStringSubmatch(top); m != nil {
		fields.BillingCycleStart = NormalizeDate(m[1])
		fields.BillingCycleEnd = NormalizeDate(m[2])
	}

	for _, re := range iciciDueDateRes {
		matched := false
		for _, zone := range []string{top, flatTop, flatAll} {
			if m := re.FindStringSubmatch(zone); m != nil {
				fields.PaymentDueDate = normalizeDateICICI(m[1])
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	if raw := scanAmountPatterns(iciciTotalRes, top, flatTop, flatAll); raw != "" {
		fields.TotalBalance = CleanAmount(raw)
	}
	if raw := scanAmountPatterns(iciciMinRes, top, flatTop, flatAll); raw != "" {
		fields.MinimumDue = CleanAmount(raw)
	}

	fields.Transactions = ExtractTransactions(text)

	return fields
}

// scanAmountPatterns tries every pattern against the header zones before
// widening to the flattened full document.
func scanAmountPatterns(patterns []*regexp.Regexp, top, flatTop, flatAll string) string {
	for _, zone := range []string{top, flatTop} {
		for _, re := range patterns {
			if m := re.FindStringSubmatch(zone); m != nil {
				return m[1]
			}
		}
	}
	for _, re := range patterns {
		if m := re.FindStringSubmatch(flatAll); m != nil {
			return m[1]
		}
	}
	return ""
}
