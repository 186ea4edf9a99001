package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/convert"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List unit categories, units and timezones",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Unit categories:")
		for _, c := range convert.Categories() {
			fmt.Fprintf(out, "  %-8s %s\n", c, strings.Join(convert.Units(c), ", "))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Timezones (fixed offsets, no DST):")
		for _, z := range convert.Zones() {
			off, _ := convert.Offset(z)
			fmt.Fprintf(out, "  %-5s %s\n", z, convert.FormatOffset(off))
		}
	},
}
