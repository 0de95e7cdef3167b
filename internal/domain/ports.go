package domain

// InventoryStore persists the product catalog between runs.
type InventoryStore interface {
	// Load reads the persisted catalog. A missing file is not an error and
	// yields an empty catalog.
	Load(path string) ([]*Product, error)
	// Save replaces any previously persisted catalog with products.
	Save(path string, products []*Product) error
}

// ConfigLoader reads the tracker configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
