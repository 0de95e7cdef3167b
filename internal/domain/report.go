package domain

import "strings"

// Fixed messages for empty reports.
const (
	EmptyInventoryMessage = "No products in inventory."
	EmptySalesMessage     = "No sales recorded yet."
)

// InventoryReport renders every product on its own line, in insertion order.
func InventoryReport(inv *Inventory) string {
	lines := inv.Describe()
	if len(lines) == 0 {
		return EmptyInventoryMessage
	}
	return strings.Join(lines, "\n")
}

// SalesReport renders every recorded sale on its own line, oldest first.
func SalesReport(ledger *SalesLedger) string {
	lines := ledger.Lines()
	if len(lines) == 0 {
		return EmptySalesMessage
	}
	return strings.Join(lines, "\n")
}
