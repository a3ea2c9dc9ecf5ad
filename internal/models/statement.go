package models

// BankType identifies a supported statement issuer.
type BankType string

const (
	BankKotak   BankType = "KOTAK"
	BankICICI   BankType = "ICICI"
	BankAxis    BankType = "AXIS"
	BankHDFC    BankType = "HDFC"
	BankSBI     BankType = "SBI"
	BankUnknown BankType = "UNKNOWN"
)

// Transaction is a single statement row. Dates are ISO YYYY-MM-DD when the
// source token could be normalized, otherwise empty. Amounts keep the bank's
// own convention: ₹-prefixed for Axis/HDFC, plain for the line-based banks.
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"` // "Credit", "Debit", or ""
}

// StatementFields is the canonical output record. Every field is present in
// every result; a field the extractor could not recognize is an empty string,
// never absent. Transactions preserve source order.
type StatementFields struct {
	Last4             string        `json:"last4"`
	StatementDate     string        `json:"statement_date"`
	BillingCycleStart string        `json:"billing_cycle_start"`
	BillingCycleEnd   string        `json:"billing_cycle_end"`
	PaymentDueDate    string        `json:"payment_due_date"`
	TotalBalance      string        `json:"total_balance"`
	MinimumDue        string        `json:"minimum_due"`
	Transactions      []Transaction `json:"transactions"`
}

// NewStatementFields returns a fully-shaped empty record. Transactions is a
// non-nil slice so it marshals to [] rather than null.
func NewStatementFields() *StatementFields {
	return &StatementFields{Transactions: []Transaction{}}
}

// Result pairs the classified bank with its extracted fields.
type Result struct {
	Bank   BankType         `json:"bank"`
	Fields *StatementFields `json:"fields"`
}
