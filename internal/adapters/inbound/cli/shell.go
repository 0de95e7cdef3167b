package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/tui"
	"github.com/stockroom/stockroom/internal/application"
	"github.com/stockroom/stockroom/internal/domain"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over the inventory",
		Long: "Run add/remove/list/sell/sales/save in one long-lived process, so the sales " +
			"ledger survives between operations. The inventory is saved on quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newTracker(cmd)
			if err != nil {
				return err
			}
			return runShell(cmd.OutOrStdout(), cmd.InOrStdin(), svc)
		},
	}
}

func runShell(out io.Writer, in io.Reader, svc *application.TrackerService) error {
	fmt.Fprintln(out, "stockroom shell — add, remove, list, sell, sales, save, quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, rest := fields[0], fields[1:]

		switch name {
		case "quit", "exit":
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Inventory saved. Bye.")
			return nil
		case "list":
			fmt.Fprint(out, tui.RenderReport("Inventory Report", svc.InventoryReport()))
		case "sales":
			fmt.Fprint(out, tui.RenderReport("Sales Report", svc.SalesReport()))
		case "save":
			if err := svc.Save(); err != nil {
				fmt.Fprint(out, tui.RenderError(err.Error()))
				continue
			}
			fmt.Fprint(out, tui.RenderSuccess("Inventory saved."))
		case "add":
			shellAdd(out, svc, rest)
		case "remove":
			shellRemove(out, svc, rest)
		case "sell":
			shellSell(out, svc, rest)
		default:
			fmt.Fprint(out, tui.RenderError(fmt.Sprintf("unknown command %q", name)))
		}
	}

	// EOF on stdin ends the session like quit does.
	return svc.Save()
}

func shellAdd(out io.Writer, svc *application.TrackerService, args []string) {
	if len(args) < 4 || len(args) > 5 {
		fmt.Fprint(out, tui.RenderError("usage: add <sku> <name> <price> <qty> [category]"))
		return
	}

	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprint(out, tui.RenderError(fmt.Sprintf("invalid price %q", args[2])))
		return
	}
	qty, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Fprint(out, tui.RenderError(fmt.Sprintf("invalid quantity %q", args[3])))
		return
	}
	category := ""
	if len(args) == 5 {
		category = args[4]
	}

	p, err := svc.AddProduct(args[1], args[0], price, qty, category)
	if err != nil {
		fmt.Fprint(out, tui.RenderError(err.Error()))
		return
	}
	fmt.Fprint(out, tui.RenderSuccess(fmt.Sprintf("Product '%s' added.", p.Name)))
}

func shellRemove(out io.Writer, svc *application.TrackerService, args []string) {
	if len(args) != 1 {
		fmt.Fprint(out, tui.RenderError("usage: remove <sku>"))
		return
	}

	p, err := svc.RemoveProduct(args[0])
	if err != nil {
		fmt.Fprint(out, tui.RenderError(err.Error()))
		return
	}
	fmt.Fprint(out, tui.RenderSuccess(fmt.Sprintf("Product '%s' removed.", p.Name)))
}

func shellSell(out io.Writer, svc *application.TrackerService, args []string) {
	if len(args) != 2 {
		fmt.Fprint(out, tui.RenderError("usage: sell <sku> <qty>"))
		return
	}

	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprint(out, tui.RenderError(fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidQuantity, args[1]).Error()))
		return
	}

	ev, err := svc.RecordSale(args[0], qty)
	if err != nil {
		fmt.Fprint(out, tui.RenderError(err.Error()))
		return
	}

	p, _ := svc.GetProduct(args[0])
	fmt.Fprint(out, tui.RenderSuccess(fmt.Sprintf("Sold %d of %s (%d left).", ev.Quantity, p.Name, p.Quantity)))
}
