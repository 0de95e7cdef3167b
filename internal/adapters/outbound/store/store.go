package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stockroom/stockroom/internal/domain"
)

// Store is the file-based implementation of domain.InventoryStore. The whole
// catalog is written as one JSON array of flat product records.
type Store struct{}

// New creates a new file-based inventory store.
func New() *Store {
	return &Store{}
}

// Load reads the catalog from path. A missing file means a fresh start and
// returns an empty catalog.
func (s *Store) Load(path string) ([]*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no saved inventory is not an error
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return products, nil
}

// Save replaces the file at path with the given catalog. The write goes to a
// temp file in the same directory and is renamed into place, so an
// interrupted save cannot leave a truncated catalog behind.
func (s *Store) Save(path string, products []*domain.Product) error {
	if products == nil {
		products = []*domain.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".inventory-*.json")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
