package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Day-first layouts tried in order by NormalizeDate. Indian statements put
// the day before the month, so numeric forms are read as dd/mm/yyyy.
var dayFirstLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-January-2006",
	"Jan 2 2006",
	"January 2 2006",
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	"Jan 2006",
	"January 2006",
}

var (
	fourDigitYearRe = regexp.MustCompile(`\d{4}`)
	twoDigitYearRe  = regexp.MustCompile(`'?(\d{2})$`)
)

// cleanDateToken strips punctuation that varies between layouts and OCR runs:
// commas, periods after month abbreviations, curly quotes, and collapses
// whitespace. A trailing two-digit year is expanded to 20yy.
func cleanDateToken(s string) string {
	s = strings.TrimSpace(s)
	r := strings.NewReplacer("’", "'", "‘", "'", ",", "", ".", " ")
	s = r.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if !fourDigitYearRe.MatchString(s) {
		if m := twoDigitYearRe.FindStringSubmatch(s); m != nil {
			s = strings.TrimSuffix(s, m[0]) + "20" + m[1]
		}
	}
	return strings.ReplaceAll(s, "'", "")
}

// NormalizeDate converts a free-form date token to ISO YYYY-MM-DD, trying
// day-first layouts in order. Month-only tokens resolve to the first of the
// month. On total failure the trimmed original token is returned unchanged so
// callers can detect non-ISO output and apply their own fallback.
func NormalizeDate(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	cleaned := cleanDateToken(trimmed)
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return trimmed
}

var (
	amountNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	amountExactRe  = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// CleanAmount normalizes a currency token to "₹<value>" with exactly two
// decimal places. Currency markers, thousands separators, backticks and the
// stray "C" glyph that OCR makes of the rupee symbol are stripped first.
// Input with no numeric substring yields the empty string.
func CleanAmount(s string) string {
	t := strings.NewReplacer("`", "", "Rs.", "", "Rs", "", "INR", "", "₹", "", "C", "", ",", "").Replace(s)
	t = strings.TrimSpace(t)

	v := t
	if !amountExactRe.MatchString(v) {
		v = amountNumberRe.FindString(t)
		if v == "" {
			return ""
		}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return ""
	}
	return "₹" + d.StringFixed(2)
}

var (
	last4LabeledRe = regexp.MustCompile(`(?i)Primary\s*Card\s*Transactions[-:\s]*([0-9Xx\s\-]{8,})`)
	last4MaskedRe  = regexp.MustCompile(`[Xx]{2,}[\s\-]*\d{4}`)
	fourDigitRe    = regexp.MustCompile(`\b(\d{4})\b`)
	digitRe        = regexp.MustCompile(`\d`)
)

// FindLast4 extracts the trailing four digits of the masked card number.
// It prefers the labeled Kotak-style pattern, then any XXXX-masked group,
// then the last standalone four-digit number that is not a plausible year.
// Returns "" when nothing matches.
func FindLast4(text string) string {
	if m := last4LabeledRe.FindStringSubmatch(text); m != nil {
		digits := digitRe.FindAllString(m[1], -1)
		if len(digits) >= 4 {
			return strings.Join(digits[len(digits)-4:], "")
		}
	}
	if m := last4MaskedRe.FindString(text); m != "" {
		digits := digitRe.FindAllString(m, -1)
		if len(digits) >= 4 {
			return strings.Join(digits[len(digits)-4:], "")
		}
	}
	matches := fourDigitRe.FindAllStringSubmatch(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(matches[i][1])
		if err != nil {
			continue
		}
		if n < 1900 || n > 2099 {
			return matches[i][1]
		}
	}
	return ""
}

// dateTokenPattern matches the date shapes that appear near labels:
// "Oct 14, 2025", "14 Oct '25", "14/10/2025".
const dateTokenPattern = `([A-Za-z]{3,9}\s+\d{1,2},?\s*\d{4}|\d{1,2}\s+[A-Za-z]{3,9}\s+'?\d{2,4}|\d{1,2}/\d{1,2}/\d{4})`

var dateTokenRe = regexp.MustCompile(`(?i)` + dateTokenPattern)

// findDateNearLabel locates a date token around a label match: first a fixed
// window after the label, then a small window before it, and finally a single
// combined label-then-date pattern. Returns "" when no date is found.
func findDateNearLabel(text, labelPattern string, windowAfter, windowBefore int) string {
	labelRe := regexp.MustCompile(`(?i)` + labelPattern)
	combinedRe := regexp.MustCompile(`(?i)` + labelPattern + `[\s\S]{0,` + strconv.Itoa(windowAfter) + `}` + dateTokenPattern)

	loc := labelRe.FindStringIndex(text)
	if loc == nil {
		if m := combinedRe.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[len(m)-1])
		}
		return ""
	}

	end := loc[1] + windowAfter
	if end > len(text) {
		end = len(text)
	}
	if m := dateTokenRe.FindString(text[loc[1]:end]); m != "" {
		return strings.TrimSpace(m)
	}

	start := loc[0] - windowBefore
	if start < 0 {
		start = 0
	}
	if m := dateTokenRe.FindString(text[start:loc[0]]); m != "" {
		return strings.TrimSpace(m)
	}

	if m := combinedRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[len(m)-1])
	}
	return ""
}

// collapseSpaces reduces any run of whitespace to a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// head returns the first n bytes of text — the header/summary zone where
// statement summaries live.
func head(text string, n int) string {
	if len(text) > n {
		return text[:n]
	}
	return text
}

// monthToNum maps an English month name or abbreviation to 1-12, 0 if unknown.
func monthToNum(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) > 3 {
		name = name[:3]
	}
	months := map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
	return months[name]
}
