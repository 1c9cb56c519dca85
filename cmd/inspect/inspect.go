// Package inspect prints what would be extracted from an invoice without
// touching any ledger.
package inspect

import (
	"fmt"

	"fjacquet/trade-invoice-csv/cmd/common"
	"fjacquet/trade-invoice-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the vendor, date and items found in an invoice",
	Long: `Print the vendor profile, resolved invoice date and extracted items of a PDF invoice.
Nothing is written to the ledger.

Example:
  trade-invoice-csv inspect -v TOOLSTATION -i invoice.pdf`,
	RunE: inspectFunc,
}

func inspectFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Vendor == "" || root.SharedFlags.Input == "" {
		return fmt.Errorf("--vendor and --input_pdf are required")
	}
	if err := common.ValidateInput(root.SharedFlags.Input); err != nil {
		return err
	}

	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	profile, err := c.GetRegistry().Lookup(root.SharedFlags.Vendor)
	if err != nil {
		return err
	}

	o, err := c.GetExtractor().Extract(profile, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	cmd.Print(o.String())
	return nil
}
