// Package convert holds the static unit and timezone tables and the pure
// conversion functions built on them.
package convert

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a unit symbol is not in its category table.
var ErrUnknownUnit = errors.New("unknown unit")

// Category is a unit-conversion family.
type Category string

const (
	Length Category = "length"
	Mass   Category = "mass"
	Volume Category = "volume"
	Temp   Category = "temp"
	Number Category = "number"
)

// factor is one row of a linear table: the unit expressed in the base unit.
type factor struct {
	unit  string
	value float64
}

// Tables keep declaration order so unit listings and seeded draws are stable.
var (
	lengthFactors = []factor{ // meter
		{"mm", 0.001},
		{"cm", 0.01},
		{"m", 1},
		{"km", 1000},
		{"in", 0.0254},
		{"ft", 0.3048},
		{"yd", 0.9144},
		{"mi", 1609.344},
	}

	massFactors = []factor{ // kilogram
		{"g", 0.001},
		{"kg", 1},
		{"lb", 0.45359237},
		{"oz", 0.028349523125},
	}

	volumeFactors = []factor{ // liter (US customary)
		{"ml", 0.001},
		{"L", 1},
		{"gal", 3.785411784},
		{"cup", 0.2365882365},
	}

	numberFactors = []factor{ // ones
		{"thousand", 1e3},
		{"lakh", 1e5},
		{"million", 1e6},
		{"crore", 1e7},
		{"billion", 1e9},
	}

	tempUnits = []string{"C", "F", "K"}
)

// Categories returns every category in generator order.
func Categories() []Category {
	return []Category{Length, Mass, Temp, Volume, Number}
}

// ParseCategory resolves a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Units returns the unit symbols of a category in table order, or nil for an
// unknown category.
func Units(c Category) []string {
	if c == Temp {
		return append([]string(nil), tempUnits...)
	}
	table := linearTable(c)
	if table == nil {
		return nil
	}
	units := make([]string, len(table))
	for i, f := range table {
		units[i] = f.unit
	}
	return units
}

// CategoryOf returns the category a unit symbol belongs to.
func CategoryOf(unit string) (Category, bool) {
	for _, c := range Categories() {
		for _, u := range Units(c) {
			if u == unit {
				return c, true
			}
		}
	}
	return "", false
}

// Convert converts value between two units of the same category.
func Convert(c Category, value float64, src, dst string) (float64, error) {
	switch c {
	case Temp:
		return Temperature(value, src, dst)
	case Length, Mass, Volume, Number:
		return Linear(c, value, src, dst)
	default:
		return 0, fmt.Errorf("unknown category %q", c)
	}
}

// Linear converts value through the category's factor table:
// value * factor[src] / factor[dst].
func Linear(c Category, value float64, src, dst string) (float64, error) {
	table := linearTable(c)
	fs, ok := lookup(table, src)
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", c, src, ErrUnknownUnit)
	}
	fd, ok := lookup(table, dst)
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", c, dst, ErrUnknownUnit)
	}
	return value * fs / fd, nil
}

// Temperature converts between C, F and K by normalizing through Celsius.
func Temperature(value float64, src, dst string) (float64, error) {
	var c float64
	switch src {
	case "C":
		c = value
	case "F":
		c = (value - 32) * 5 / 9
	case "K":
		c = value - 273.15
	default:
		return 0, fmt.Errorf("temp %q: %w", src, ErrUnknownUnit)
	}
	if src == dst {
		return value, nil
	}

	switch dst {
	case "C":
		return c, nil
	case "F":
		return c*9/5 + 32, nil
	case "K":
		return c + 273.15, nil
	default:
		return 0, fmt.Errorf("temp %q: %w", dst, ErrUnknownUnit)
	}
}

func linearTable(c Category) []factor {
	switch c {
	case Length:
		return lengthFactors
	case Mass:
		return massFactors
	case Volume:
		return volumeFactors
	case Number:
		return numberFactors
	}
	return nil
}

func lookup(table []factor, unit string) (float64, bool) {
	for _, f := range table {
		if f.unit == unit {
			return f.value, true
		}
	}
	return 0, false
}
