package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/convert"
	"github.com/abhisek/quickmaths/internal/problemgen"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value between units or a clock time between timezones",
	Example: `  quickmaths convert 100 km mi
  quickmaths convert 72 F C
  quickmaths convert 10:00 UTC IST`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	raw, from, to := args[0], args[1], args[2]
	out := cmd.OutOrStdout()

	_, fromZone := convert.Offset(from)
	_, toZone := convert.Offset(to)
	if fromZone && toZone {
		minutes, err := problemgen.ParseClock(raw)
		if err != nil {
			return fmt.Errorf("time %q: %w", raw, err)
		}
		got, err := convert.ConvertTime(minutes, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s = %s %s\n", convert.FormatClock(minutes), from, convert.FormatClock(got), to)
		return nil
	}

	cat, ok := convert.CategoryOf(from)
	if !ok {
		return fmt.Errorf("unit %q: %w", from, convert.ErrUnknownUnit)
	}
	if toCat, ok := convert.CategoryOf(to); !ok {
		return fmt.Errorf("unit %q: %w", to, convert.ErrUnknownUnit)
	} else if toCat != cat {
		return fmt.Errorf("cannot convert %s (%s) to %s (%s)", from, cat, to, toCat)
	}

	value, err := problemgen.ParseNumber(raw)
	if err != nil {
		return fmt.Errorf("value %q: %w", raw, err)
	}
	got, err := convert.Convert(cat, value, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s = %s %s\n",
		strconv.FormatFloat(value, 'g', -1, 64), from,
		strconv.FormatFloat(got, 'g', 6, 64), to)
	return nil
}
