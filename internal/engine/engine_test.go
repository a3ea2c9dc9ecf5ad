package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/statement-parser/internal/models"
)

type stubAcquirer struct {
	text   string
	err    error
	panics bool
}

func (s *stubAcquirer) Acquire(ctx context.Context, data []byte) (string, error) {
	if s.panics {
		panic("acquisition blew up")
	}
	return s.text, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseRoutesToBank(t *testing.T) {
	eng := New(
		WithLogger(testLogger()),
		WithAcquirer(&stubAcquirer{text: "KOTAK statement\n15/03/2025 COFFEE SHOP 250.00"}),
	)

	result := eng.Parse(context.Background(), []byte("pdf bytes"))

	assert.Equal(t, models.BankKotak, result.Bank)
	require.NotNil(t, result.Fields)
	require.Len(t, result.Fields.Transactions, 1)
	assert.Equal(t, "2025-03-15", result.Fields.Transactions[0].Date)
}

func TestParseAcquisitionError(t *testing.T) {
	eng := New(
		WithLogger(testLogger()),
		WithAcquirer(&stubAcquirer{err: errors.New("boom")}),
	)

	result := eng.Parse(context.Background(), nil)

	assert.Equal(t, models.BankUnknown, result.Bank)
	require.NotNil(t, result.Fields)
	assert.NotNil(t, result.Fields.Transactions, "transactions must marshal to [], not null")
	assert.Empty(t, result.Fields.Last4)
}

func TestParseRecoversFromPanic(t *testing.T) {
	eng := New(
		WithLogger(testLogger()),
		WithAcquirer(&stubAcquirer{panics: true}),
	)

	result := eng.Parse(context.Background(), []byte("x"))

	assert.Equal(t, models.BankUnknown, result.Bank)
	require.NotNil(t, result.Fields)
	assert.NotNil(t, result.Fields.Transactions)
}

func TestParseUnknownText(t *testing.T) {
	eng := New(
		WithLogger(testLogger()),
		WithAcquirer(&stubAcquirer{text: "a letter from your landlord"}),
	)

	result := eng.Parse(context.Background(), []byte("x"))

	assert.Equal(t, models.BankUnknown, result.Bank)
}
