package application

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stockroom/stockroom/internal/domain"
)

// TrackerService is the presentation-facing boundary of the tracker:
// commands in, rendered text or typed failures out. Front-ends never touch
// the catalog or the ledger directly.
type TrackerService struct {
	inventory *domain.Inventory
	ledger    *domain.SalesLedger
	store     domain.InventoryStore
	dataFile  string
	log       *logrus.Logger
}

func NewTrackerService(store domain.InventoryStore, dataFile string, log *logrus.Logger) *TrackerService {
	return NewTrackerServiceWithClock(store, dataFile, log, time.Now)
}

// NewTrackerServiceWithClock pins the ledger clock, for tests.
func NewTrackerServiceWithClock(store domain.InventoryStore, dataFile string, log *logrus.Logger, now func() time.Time) *TrackerService {
	return &TrackerService{
		inventory: domain.NewInventory(),
		ledger:    domain.NewSalesLedgerWithClock(now),
		store:     store,
		dataFile:  dataFile,
		log:       log,
	}
}

// Load populates the inventory from the data file. A missing file leaves the
// inventory empty.
func (s *TrackerService) Load() error {
	products, err := s.store.Load(s.dataFile)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}
	for _, p := range products {
		if err := s.inventory.Add(p); err != nil {
			return fmt.Errorf("loading inventory: %w", err)
		}
	}
	s.log.Debugf("loaded %d products from %s", s.inventory.Len(), s.dataFile)
	return nil
}

// Save writes the current catalog to the data file, replacing its contents.
func (s *TrackerService) Save() error {
	if err := s.store.Save(s.dataFile, s.inventory.Products()); err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	s.log.Debugf("saved %d products to %s", s.inventory.Len(), s.dataFile)
	return nil
}

// AddProduct validates the fields, constructs the product, and inserts it
// into the catalog.
func (s *TrackerService) AddProduct(name, sku string, price float64, quantity int, category string) (*domain.Product, error) {
	p, err := domain.NewProduct(name, sku, price, quantity, category)
	if err != nil {
		s.log.Warnf("rejected product %q: %v", sku, err)
		return nil, err
	}
	if err := s.inventory.Add(p); err != nil {
		s.log.Warnf("rejected product %q: %v", sku, err)
		return nil, err
	}
	s.log.Infof("added product %s (%s)", p.SKU, p.Name)
	return p, nil
}

// RemoveProduct deletes the product with the given SKU and returns it.
func (s *TrackerService) RemoveProduct(sku string) (*domain.Product, error) {
	p, err := s.inventory.Remove(sku)
	if err != nil {
		return nil, err
	}
	s.log.Infof("removed product %s (%s)", p.SKU, p.Name)
	return p, nil
}

func (s *TrackerService) GetProduct(sku string) (*domain.Product, bool) {
	return s.inventory.Get(sku)
}

// ListProducts returns each product's listing line in insertion order.
func (s *TrackerService) ListProducts() []string {
	return s.inventory.Describe()
}

// RecordSale runs the sale workflow. All validation happens before any
// mutation, so a failure never leaves partial state: either the stock is
// decremented and the ledger gains an event, or nothing changes.
func (s *TrackerService) RecordSale(sku string, quantity int) (domain.SaleEvent, error) {
	p, ok := s.inventory.Get(sku)
	if !ok {
		return domain.SaleEvent{}, fmt.Errorf("%w: %s", domain.ErrNotFound, sku)
	}
	if quantity <= 0 {
		return domain.SaleEvent{}, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}
	if quantity > p.Quantity {
		return domain.SaleEvent{}, fmt.Errorf("%w: have %d, requested %d", domain.ErrInsufficientStock, p.Quantity, quantity)
	}

	if err := p.AdjustStock(-quantity); err != nil {
		return domain.SaleEvent{}, err
	}
	ev := s.ledger.Record(sku, quantity)
	s.log.Infof("sold %d of %s, %d left", quantity, sku, p.Quantity)
	return ev, nil
}

func (s *TrackerService) InventoryReport() string {
	return domain.InventoryReport(s.inventory)
}

func (s *TrackerService) SalesReport() string {
	return domain.SalesReport(s.ledger)
}

// Inventory exposes the catalog for read-only use by front-ends.
func (s *TrackerService) Inventory() *domain.Inventory { return s.inventory }

// Ledger exposes this run's sales log for read-only use by front-ends.
func (s *TrackerService) Ledger() *domain.SalesLedger { return s.ledger }
