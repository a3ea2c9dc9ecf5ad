// Package parser classifies statement text by issuing bank and extracts the
// canonical field set. Extraction is heuristic: every field is attempted
// through an ordered ladder of labeled patterns and left empty on total
// failure. Nothing in this package panics on malformed input.
package parser

import (
	"fmt"
	"strings"

	"github.com/credlens/statement-parser/internal/models"
)

// FieldExtractor is a bank-specific extraction pipeline over full document text.
type FieldExtractor interface {
	// Extract produces a fully-shaped StatementFields record. Missing fields
	// are empty strings; it never returns nil.
	Extract(text string) *models.StatementFields
	// BankName returns the human-readable bank name.
	BankName() string
}

// route pairs a classification predicate with the extractor it selects.
type route struct {
	bank    models.BankType
	match   func(upper string) bool
	builder func() FieldExtractor
}

// routes is evaluated in fixed priority order; the first match wins.
// No scoring, no ambiguity resolution.
var routes = []route{
	{models.BankICICI, keyword("ICICI BANK"), func() FieldExtractor { return &ICICIExtractor{} }},
	{models.BankKotak, keyword("KOTAK"), func() FieldExtractor { return &KotakExtractor{} }},
	{models.BankAxis, keyword("AXIS BANK"), func() FieldExtractor { return &AxisExtractor{} }},
	{models.BankHDFC, keyword("HDFC BANK"), func() FieldExtractor { return &HDFCExtractor{} }},
	{models.BankSBI, keyword("SBI"), func() FieldExtractor { return &SBIExtractor{} }},
}

func keyword(kw string) func(string) bool {
	return func(upper string) bool { return strings.Contains(upper, kw) }
}

// Detect classifies statement text by bank-identifying keyword. Every input
// yields exactly one BankType; unmatched text yields BankUnknown.
func Detect(text string) models.BankType {
	upper := strings.ToUpper(text)
	for _, r := range routes {
		if r.match(upper) {
			return r.bank
		}
	}
	return models.BankUnknown
}

// New returns the extractor for the given bank type.
func New(bank models.BankType) (FieldExtractor, error) {
	for _, r := range routes {
		if r.bank == bank {
			return r.builder(), nil
		}
	}
	return nil, fmt.Errorf("unsupported bank type: %q", bank)
}

// DetectAndExtract classifies the text and runs the matching extractor.
// Unrecognized text yields BankUnknown with an empty field set.
func DetectAndExtract(text string) models.Result {
	bank := Detect(text)
	if bank == models.BankUnknown {
		return models.Result{Bank: models.BankUnknown, Fields: models.NewStatementFields()}
	}
	ext, err := New(bank)
	if err != nil {
		return models.Result{Bank: models.BankUnknown, Fields: models.NewStatementFields()}
	}
	return models.Result{Bank: bank, Fields: ext.Extract(text)}
}
