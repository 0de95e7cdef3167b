package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

func newSalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Show the sales report for this session",
		Long:  "The sales ledger lives for one process. Use `stockroom shell` to record sales and review the report in the same session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newTracker(cmd)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport("Sales Report", svc.SalesReport()))
			return nil
		},
	}
}
