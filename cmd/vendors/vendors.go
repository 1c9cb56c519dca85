// Package vendors lists the registered vendor profiles.
package vendors

import (
	"fmt"
	"text/tabwriter"

	"fjacquet/trade-invoice-csv/cmd/root"
	"fjacquet/trade-invoice-csv/internal/vendor"

	"github.com/spf13/cobra"
)

// Cmd represents the vendors command
var Cmd = &cobra.Command{
	Use:   "vendors",
	Short: "List registered vendor profiles",
	Long: `List every registered vendor with its date template, item-line pattern,
field offsets and documented column layout.`,
	RunE: vendorsFunc,
}

func vendorsFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	return Write(cmd, c.GetRegistry())
}

// Write prints one block per profile of r to the command's output.
func Write(cmd *cobra.Command, r *vendor.Registry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range r.Profiles() {
		o := p.Offsets()
		fmt.Fprintf(w, "%s\t%s\n", p.ID(), p.Name())
		fmt.Fprintf(w, "  date format\t%s\n", p.DateFormat())
		fmt.Fprintf(w, "  item regex\t%s\n", p.ItemRegex())
		fmt.Fprintf(w, "  offsets\tname %d, units %d, unit cost %d\n", o.Name, o.Units, o.UnitCost)
		if p.Layout() != "" {
			fmt.Fprintf(w, "  layout\t%s\n", p.Layout())
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
