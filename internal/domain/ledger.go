package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const saleTimeFormat = "2006-01-02 15:04:05"

// SaleEvent is one recorded sale. Events are immutable once appended.
type SaleEvent struct {
	ID       string
	SKU      string
	Quantity int
	Time     time.Time
}

// SalesLedger is the append-only, chronological log of sales for this
// process run. It is not persisted.
type SalesLedger struct {
	events []SaleEvent
	now    func() time.Time
}

func NewSalesLedger() *SalesLedger {
	return NewSalesLedgerWithClock(time.Now)
}

// NewSalesLedgerWithClock lets tests pin event timestamps.
func NewSalesLedgerWithClock(now func() time.Time) *SalesLedger {
	return &SalesLedger{now: now}
}

// Record appends a sale of quantity units of sku, stamped with the current
// time, and returns the new event.
func (l *SalesLedger) Record(sku string, quantity int) SaleEvent {
	ev := SaleEvent{
		ID:       uuid.NewString(),
		SKU:      sku,
		Quantity: quantity,
		Time:     l.now(),
	}
	l.events = append(l.events, ev)
	return ev
}

// Events returns a copy of the log in chronological order.
func (l *SalesLedger) Events() []SaleEvent {
	out := make([]SaleEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Lines renders each sale in chronological order.
func (l *SalesLedger) Lines() []string {
	lines := make([]string, 0, len(l.events))
	for _, ev := range l.events {
		lines = append(lines, fmt.Sprintf("Product %s, Quantity: %d, Time: %s",
			ev.SKU, ev.Quantity, ev.Time.Format(saleTimeFormat)))
	}
	return lines
}

func (l *SalesLedger) Len() int { return len(l.events) }
