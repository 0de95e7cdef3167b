package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/domain"
)

func newSellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sell <sku> <qty>",
		Short: "Record a sale and decrement stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sku := args[0]
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidQuantity, args[1])
			}

			svc, err := newTracker(cmd)
			if err != nil {
				return err
			}

			ev, err := svc.RecordSale(sku, qty)
			if err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}

			p, _ := svc.GetProduct(sku)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuccess(
				fmt.Sprintf("Sold %d of %s (%d left).", ev.Quantity, p.Name, p.Quantity)))
			return nil
		},
	}
}
