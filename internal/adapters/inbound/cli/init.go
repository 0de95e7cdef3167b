package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/store"
	"github.com/stockroom/stockroom/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the inventory data file with the starter catalog",
		Long:  "Write the configured seed products to the data file so there is something to work with on first run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(cfg.DataFile); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.DataFile)
				}
			}

			products := make([]*domain.Product, 0, len(cfg.Seed))
			for _, seed := range cfg.Seed {
				p, err := domain.NewProduct(seed.Name, seed.SKU, seed.Price, seed.Quantity, seed.Category)
				if err != nil {
					return fmt.Errorf("seed product %q: %w", seed.SKU, err)
				}
				products = append(products, p)
			}

			if err := store.New().Save(cfg.DataFile, products); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d products\n", cfg.DataFile, len(products))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing data file")

	return cmd
}
