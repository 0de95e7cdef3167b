package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stockroom",
		Short:         "Track products, stock levels, and sales",
		Long:          "Stockroom keeps a small product catalog in a JSON file and records sales against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("data", "", "Path to the inventory data file (overrides config)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSellCmd())
	cmd.AddCommand(newSalesCmd())
	cmd.AddCommand(newShellCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err.Error()))
	}
	return err
}
