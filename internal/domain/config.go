package domain

import "fmt"

// DefaultDataFile is where the catalog is persisted unless configured
// otherwise, relative to the working directory.
const DefaultDataFile = "inventory_data.json"

// Config holds tracker settings read from .stockroom.yaml and the
// environment.
type Config struct {
	DataFile string    `yaml:"data_file" envconfig:"STOCKROOM_DATA_FILE"`
	LogLevel string    `yaml:"log_level" envconfig:"STOCKROOM_LOG_LEVEL"`
	Seed     []Product `yaml:"seed" ignored:"true"`
}

// DefaultConfig returns the settings used when no config file exists. The
// seed catalog is the starter inventory written by `stockroom init`.
func DefaultConfig() Config {
	return Config{
		DataFile: DefaultDataFile,
		LogLevel: "warn",
		Seed: []Product{
			{Name: "Apple", SKU: "SKU001", Price: 0.99, Quantity: 100, Category: "Fruit"},
			{Name: "Milk", SKU: "SKU002", Price: 2.49, Quantity: 50, Category: "Dairy"},
			{Name: "Bread", SKU: "SKU003", Price: 1.99, Quantity: 75, Category: "Bakery"},
		},
	}
}

func (c Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	for i, p := range c.Seed {
		if _, err := NewProduct(p.Name, p.SKU, p.Price, p.Quantity, p.Category); err != nil {
			return fmt.Errorf("seed[%d]: %w", i, err)
		}
	}
	return nil
}
