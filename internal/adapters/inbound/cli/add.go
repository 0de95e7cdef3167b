package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

func newAddCmd() *cobra.Command {
	var (
		name     string
		sku      string
		price    float64
		qty      int
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newTracker(cmd)
			if err != nil {
				return err
			}

			p, err := svc.AddProduct(name, sku, price, qty, category)
			if err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuccess(fmt.Sprintf("Product '%s' added.", p.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&sku, "sku", "", "Stock keeping unit (must be unique)")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	cmd.Flags().IntVar(&qty, "qty", 0, "Initial stock quantity")
	cmd.Flags().StringVar(&category, "category", "", "Category (defaults to Uncategorized)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("sku")

	return cmd
}
