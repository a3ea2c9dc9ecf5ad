package parser

import (
	"regexp"
	"strings"

	"github.com/credlens/statement-parser/internal/models"
)

// genericTxnRe matches a self-contained transaction line:
// dd/mm/yyyy, free-form description, two-decimal amount, optional "Cr" suffix.
var genericTxnRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})\s+(.*?)\s+([0-9,]+\.\d{2})(?:\s*Cr)?$`)

// ExtractTransactions scans line-oriented text for <date> <description>
// <amount> triples. Non-matching lines are skipped; there is no multi-line
// merging. Used by the Kotak and ICICI extractors, whose statements keep each
// transaction on a single line.
func ExtractTransactions(text string) []models.Transaction {
	txns := []models.Transaction{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := genericTxnRe.FindStringSubmatch(line)
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
