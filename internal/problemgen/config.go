package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/quickmaths/internal/convert"
)

// UnitConfig restricts which unit categories and symbols the unit-conversion
// generator draws from.
type UnitConfig struct {
	// EnabledCategories is the set of categories to draw from. An empty set
	// (or one naming no known category) means all categories.
	EnabledCategories map[convert.Category]bool

	// AllowedUnits optionally restricts a category to a subset of its units.
	// A restriction leaving fewer than two known units is ignored.
	AllowedUnits map[convert.Category][]string
}

// DefaultUnitConfig enables every category with no unit restrictions.
func DefaultUnitConfig() UnitConfig {
	enabled := make(map[convert.Category]bool)
	for _, c := range convert.Categories() {
		enabled[c] = true
	}
	return UnitConfig{
		EnabledCategories: enabled,
		AllowedUnits:      make(map[convert.Category][]string),
	}
}

// Categories returns the enabled categories in generator order, falling back
// to all categories when none are enabled.
func (c UnitConfig) Categories() []convert.Category {
	var out []convert.Category
	for _, cat := range convert.Categories() {
		if c.EnabledCategories[cat] {
			out = append(out, cat)
		}
	}
	if len(out) == 0 {
		return convert.Categories()
	}
	return out
}

// UnitsFor returns the usable units of a category in table order, falling
// back to the full table when fewer than two allowed units remain.
func (c UnitConfig) UnitsFor(cat convert.Category) []string {
	all := convert.Units(cat)
	allowed := c.AllowedUnits[cat]
	if len(allowed) == 0 {
		return all
	}
	var out []string
	for _, u := range all {
		if slices.Contains(allowed, u) {
			out = append(out, u)
		}
	}
	if len(out) < 2 {
		return all
	}
	return out
}

// Validate reports category names and unit symbols that do not exist.
// The generator itself never needs this; it falls back instead.
func (c UnitConfig) Validate() error {
	for cat := range c.EnabledCategories {
		if _, err := convert.ParseCategory(string(cat)); err != nil {
			return err
		}
	}
	for cat, units := range c.AllowedUnits {
		known := convert.Units(cat)
		if known == nil {
			return fmt.Errorf("allowed units: unknown category %q", cat)
		}
		for _, u := range units {
			if !slices.Contains(known, u) {
				return fmt.Errorf("allowed units: %s %q: %w", cat, u, convert.ErrUnknownUnit)
			}
		}
	}
	return nil
}

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// problem. The first failure stops the pipeline.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
	}
}
