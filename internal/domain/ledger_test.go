package domain_test

import (
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSalesLedger_Record(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	ledger := domain.NewSalesLedgerWithClock(fixedClock(at))

	ev := ledger.Record("SKU001", 30)
	assert.Equal(t, "SKU001", ev.SKU)
	assert.Equal(t, 30, ev.Quantity)
	assert.Equal(t, at, ev.Time)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, 1, ledger.Len())
}

func TestSalesLedger_EventIDsAreUnique(t *testing.T) {
	ledger := domain.NewSalesLedger()

	first := ledger.Record("SKU001", 1)
	second := ledger.Record("SKU001", 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSalesLedger_ChronologicalOrder(t *testing.T) {
	ledger := domain.NewSalesLedger()

	ledger.Record("SKU001", 30)
	ledger.Record("SKU002", 5)
	ledger.Record("SKU001", 2)

	events := ledger.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "SKU001", events[0].SKU)
	assert.Equal(t, "SKU002", events[1].SKU)
	assert.Equal(t, 2, events[2].Quantity)
}

func TestSalesLedger_Lines(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	ledger := domain.NewSalesLedgerWithClock(fixedClock(at))
	ledger.Record("SKU001", 30)

	lines := ledger.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Product SKU001, Quantity: 30, Time: 2025-03-14 15:09:26", lines[0])
}

func TestSalesLedger_EventsReturnsCopy(t *testing.T) {
	ledger := domain.NewSalesLedger()
	ledger.Record("SKU001", 30)

	events := ledger.Events()
	events[0].Quantity = 999

	assert.Equal(t, 30, ledger.Events()[0].Quantity)
}
