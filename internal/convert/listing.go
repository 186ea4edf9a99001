package convert

import (
	"fmt"
	"slices"
	"strings"
)

// listingOrder is the order categories are shown to players.
var listingOrder = []Category{Length, Mass, Volume, Temp, Number}

// UnitList renders every category with its units, e.g.
// "length(mm, cm, ...), mass(g, kg, lb, oz), ...".
func UnitList() string {
	parts := make([]string, 0, len(listingOrder))
	for _, c := range listingOrder {
		parts = append(parts, fmt.Sprintf("%s(%s)", c, strings.Join(Units(c), ", ")))
	}
	return strings.Join(parts, ", ")
}

// ZoneList renders the timezone abbreviations sorted by name.
func ZoneList() string {
	names := Zones()
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// FormatOffset renders a UTC offset in minutes as "UTC+05:30".
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
