package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <sku>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newTracker(cmd)
			if err != nil {
				return err
			}

			p, err := svc.RemoveProduct(args[0])
			if err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuccess(fmt.Sprintf("Product '%s' removed.", p.Name)))
			return nil
		},
	}
}
