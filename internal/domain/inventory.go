package domain

import "fmt"

// Inventory owns the product catalog. Products keep their insertion order
// for display; the sku index and the ordered list always hold exactly the
// same entries.
type Inventory struct {
	bySKU   map[string]*Product
	ordered []*Product
}

func NewInventory() *Inventory {
	return &Inventory{bySKU: make(map[string]*Product)}
}

// Add inserts a product. A SKU already in the catalog is rejected.
func (inv *Inventory) Add(p *Product) error {
	if _, exists := inv.bySKU[p.SKU]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU)
	}
	inv.bySKU[p.SKU] = p
	inv.ordered = append(inv.ordered, p)
	return nil
}

// Remove deletes the product with the given SKU from both the index and the
// ordered list, and returns it.
func (inv *Inventory) Remove(sku string) (*Product, error) {
	p, ok := inv.bySKU[sku]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, sku)
	}
	delete(inv.bySKU, sku)
	for i, candidate := range inv.ordered {
		if candidate == p {
			inv.ordered = append(inv.ordered[:i], inv.ordered[i+1:]...)
			break
		}
	}
	return p, nil
}

// Get looks up a product by SKU without mutating anything.
func (inv *Inventory) Get(sku string) (*Product, bool) {
	p, ok := inv.bySKU[sku]
	return p, ok
}

// Products returns the catalog in insertion order. The slice is a copy; the
// products themselves are shared.
func (inv *Inventory) Products() []*Product {
	out := make([]*Product, len(inv.ordered))
	copy(out, inv.ordered)
	return out
}

// Describe renders every product's listing line in insertion order.
func (inv *Inventory) Describe() []string {
	lines := make([]string, 0, len(inv.ordered))
	for _, p := range inv.ordered {
		lines = append(lines, p.Describe())
	}
	return lines
}

// StockLevels returns the quantity of every product, index-aligned with
// Products. It is derived on demand from the products themselves, so it can
// never drift from the catalog.
func (inv *Inventory) StockLevels() []int {
	levels := make([]int, 0, len(inv.ordered))
	for _, p := range inv.ordered {
		levels = append(levels, p.Quantity)
	}
	return levels
}

func (inv *Inventory) Len() int { return len(inv.ordered) }
