package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the inventory report",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newTracker(cmd)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(svc.Inventory().Products())
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport("Inventory Report", svc.InventoryReport()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")

	return cmd
}
